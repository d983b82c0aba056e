// Package cli turns the taqueria command line into an app.Config. It picks
// the menu source (-menu, -m or a MENU_PATH argument, at most one of them),
// reads the prompt, -receipt and -list switches and the logging options, and
// reports bad input as an ExitError carrying exit code 2.
package cli

// Package cli provides the interactive devopschat command-line client.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. Commands: register, login, ask, history, export, logout,
// exit. Passwords are read from the terminal without echo.
package cli

// Package utils provides terminal helpers shared across padlock commands,
// chiefly hidden passphrase input and the typed-twice confirmation flow.
package utils

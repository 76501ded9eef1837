// Package components renders page fragments.
package components

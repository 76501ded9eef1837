// Package pages renders full documents.
package pages

// Package dto holds the read models returned by the order repositories.
// They are plain structs tagged for JSON so the HTTP adapter can serve them
// as is.
package dto

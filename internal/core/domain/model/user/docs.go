// Package user contains the User aggregate: the person who places orders or
// delivers them, identified externally by a wallet address.
package user

// Package main provides the entry point for LinkShelf, a small link directory.
// It runs a Fiber web server with a public listing page (links grouped into
// folders and subfolders, optionally password gated), a suggestion form and
// a password protected admin dashboard. Data is persisted with gorm.
package main

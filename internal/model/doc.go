package model

// Package model defines the users data: the decoded remote record and the
// display row derived from it.

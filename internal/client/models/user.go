// Package models defines the wire types exchanged with the remote user
// directory service.
package models

import "fmt"

// User is a single directory record. The ID is assigned by the server and
// never changes; the client only ever holds an ephemeral copy.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

// FullName returns the record's display name.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// UserPage is one page of the remote collection as reported by the service.
type UserPage struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}

// UserPatch carries the three editable fields of a record for a partial
// update. All other fields are server-owned.
type UserPatch struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

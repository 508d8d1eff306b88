// File: neuroglove/models/problem.go
package models

import "time"

// Problem is a user-submitted problem report. It is persisted first and
// mailed to the support recipient best-effort.
type Problem struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	UserEmail   string    `bson:"userEmail" json:"userEmail"`
	Description string    `bson:"problemDescription" json:"problemDescription"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}

// ProblemRequest is the report submission body.
type ProblemRequest struct {
	Problem string `json:"problem" binding:"required"`
}

/*
The models package defines the fundamental structures and interfaces used in this project.

Types:

User, Dataset:
The follow graph handed out by the registration endpoint, and the parameters of
the computation to run on it.

Registration, GenerateWebhookResponse, Outcome:
The bodies exchanged with the remote endpoint.

Interfaces:

RunStore:
The RunStore interface abstracts the archiving of completed runs, allowing for
multiple implementations.
*/
package models

import (
	"errors"
)

// User is a node of the follow graph. Follows lists the IDs this user follows;
// they need not belong to another User of the same Dataset.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Follows []int  `json:"follows"`
}

// Dataset contains the users and the parameters that drive a single computation.
type Dataset struct {
	Users  []User `json:"users"`
	N      int    `json:"n"`
	FindID int    `json:"find_id"`
}

// Registration is the body sent to the generate-webhook endpoint.
type Registration struct {
	Name  string `json:"name"`
	RegNo string `json:"regNo"`
	Email string `json:"email"`
}

// GenerateWebhookResponse is what the generate-webhook endpoint returns: the
// callback URL, the token to authenticate on it, and the dataset to process.
type GenerateWebhookResponse struct {
	Webhook     string   `json:"webhook"`
	AccessToken string   `json:"access_token"`
	Data        *Dataset `json:"data"`
}

// Outcome is the body posted to the callback URL.
type Outcome struct {
	RegNo   string `json:"reg_no"`
	Outcome []int  `json:"outcome"`
}

// NewOutcome returns an Outcome that never serializes a nil result as null.
func NewOutcome(regNo string, result []int) Outcome {
	if result == nil {
		result = []int{}
	}
	return Outcome{RegNo: regNo, Outcome: result}
}

//--------------------------ERROR-CODES--------------------------

var ErrNilDataset = errors.New("dataset is nil")
var ErrNilClientPointer = errors.New("nil client pointer")

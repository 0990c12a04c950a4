package models

import "github.com/google/uuid"

// ResponseMap maps a prompt to the respondent's answer. Answers may be empty.
type ResponseMap map[string]string

// Submission is one filled-in questionnaire. It lives only for the request
// that produced it.
type Submission struct {
	Id        uuid.UUID   `json:"id"`
	Responses ResponseMap `json:"responses"`
	FreeWrite string      `json:"freeWrite"`
}

func NewSubmission(responses ResponseMap, freeWrite string) *Submission {
	return &Submission{
		Id:        uuid.New(),
		Responses: responses,
		FreeWrite: freeWrite,
	}
}

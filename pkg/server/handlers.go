package server

import (
	"Memo/handler"
)

type Handlers struct {
	Auth  *handler.Auth
	Note  *handler.Note
	Share *handler.NoteShare
}

package service

import "errors"

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrSeedNotFound      = errors.New("seed not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrNotMember         = errors.New("user is not a member of this workspace")
	ErrInvalidMode       = errors.New("invalid copilot mode")
	ErrInvalidLens       = errors.New("invalid copilot lens")
	ErrEmptyConversation = errors.New("conversation has no user message")
	ErrContentFlagged    = errors.New("message was flagged by moderation")
)

package dto

// MessageItem is a single thread entry. IsOwn marks messages authored by the
// requesting account so clients can lay out the thread without comparing IDs.
type MessageItem struct {
	ID             uint    `json:"id"`
	ConversationID uint    `json:"conversation_id"`
	SenderID       uint    `json:"sender_id"`
	SenderName     string  `json:"sender_name,omitempty"`
	IsOwn          bool    `json:"is_own"`
	Content        string  `json:"content"`
	Attachment     *string `json:"attachment,omitempty"`
	IsRead         bool    `json:"is_read"`
	ReadAt         *string `json:"read_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// ConversationItem carries a conversation plus its derived fields. UnreadCount
// and LastMessage are computed per request, never persisted.
type ConversationItem struct {
	ID              uint         `json:"id"`
	UUID            string       `json:"uuid"`
	Subject         string       `json:"subject"`
	ParticipantID   uint         `json:"participant_id"`
	ParticipantName string       `json:"participant_name,omitempty"`
	IsActive        bool         `json:"is_active"`
	UnreadCount     int64        `json:"unread_count"`
	LastMessage     *MessageItem `json:"last_message,omitempty"`
	CreatedAt       string       `json:"created_at"`
	UpdatedAt       string       `json:"updated_at"`
}

// CreateConversationRequest opens a thread with its initial message
type CreateConversationRequest struct {
	AccountID uint   `json:"-"`
	Subject   string `json:"subject" validate:"required,min=1,max=200"`
	Message   string `json:"message" validate:"required,min=1"`
}

// CreateConversationResponse returns the created thread
type CreateConversationResponse struct {
	Message      string           `json:"message"`
	Conversation ConversationItem `json:"conversation"`
}

// ListConversationsRequest pages through the caller's threads
type ListConversationsRequest struct {
	AccountID uint `json:"-"`
	Page      uint `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize  uint `json:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
}

// ListConversationsResponse lists threads newest-activity first
type ListConversationsResponse struct {
	Message       string             `json:"message"`
	Conversations []ConversationItem `json:"conversations"`
}

// GetConversationRequest fetches a single thread
type GetConversationRequest struct {
	AccountID      uint `json:"-"`
	ConversationID uint `json:"-"`
}

// GetConversationResponse wraps a single thread
type GetConversationResponse struct {
	Message      string           `json:"message"`
	Conversation ConversationItem `json:"conversation"`
}

// ListMessagesRequest pages through a thread
type ListMessagesRequest struct {
	AccountID      uint `json:"-"`
	ConversationID uint `json:"-"`
	Page           uint `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize       uint `json:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
}

// ListMessagesResponse lists thread entries newest first
type ListMessagesResponse struct {
	Message  string        `json:"message"`
	Messages []MessageItem `json:"messages"`
}

// SendMessageRequest appends a message to an existing thread
type SendMessageRequest struct {
	AccountID      uint    `json:"-"`
	ConversationID uint    `json:"conversation_id" validate:"required"`
	Content        string  `json:"content" validate:"required,min=1"`
	Attachment     *string `json:"attachment,omitempty" validate:"omitempty,max=500"`
}

// SendMessageResponse returns the stored message
type SendMessageResponse struct {
	Message string      `json:"message"`
	Item    MessageItem `json:"item"`
}

// MarkMessageReadRequest flips a message to read on behalf of the caller
type MarkMessageReadRequest struct {
	AccountID uint `json:"-"`
	MessageID uint `json:"-"`
}

// MarkMessageReadResponse reports whether the read state actually changed
type MarkMessageReadResponse struct {
	Message string `json:"message"`
	Changed bool   `json:"changed"`
}

// NotificationItem is a feed entry
type NotificationItem struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	Type      string  `json:"type"`
	Link      *string `json:"link,omitempty"`
	IsRead    bool    `json:"is_read"`
	CreatedAt string  `json:"created_at"`
}

// ListNotificationsRequest pages through the caller's feed
type ListNotificationsRequest struct {
	AccountID uint `json:"-"`
	Page      uint `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize  uint `json:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
}

// ListNotificationsResponse lists feed entries newest first
type ListNotificationsResponse struct {
	Message       string             `json:"message"`
	Notifications []NotificationItem `json:"notifications"`
}

// MarkNotificationReadRequest flags a single owned notification
type MarkNotificationReadRequest struct {
	AccountID      uint `json:"-"`
	NotificationID uint `json:"-"`
}

// MarkNotificationReadResponse acknowledges the flag
type MarkNotificationReadResponse struct {
	Message string `json:"message"`
}

// MarkAllNotificationsReadResponse acknowledges the bulk flag
type MarkAllNotificationsReadResponse struct {
	Message string `json:"message"`
}

// UnreadCountsResponse carries the computed badge counters
type UnreadCountsResponse struct {
	Message             string `json:"message"`
	UnreadMessages      int64  `json:"unread_messages"`
	UnreadNotifications int64  `json:"unread_notifications"`
}

// AdminListConversationsRequest pages through every thread for staff triage
type AdminListConversationsRequest struct {
	AccountID uint `json:"-"`
	Page      uint `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize  uint `json:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
}

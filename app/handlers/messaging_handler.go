// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/arkasoft/arka-portal/app/dto"
	businessflow "github.com/arkasoft/arka-portal/business_flow"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// MessagingHandlerInterface defines the contract for messaging handlers
type MessagingHandlerInterface interface {
	CreateConversation(c fiber.Ctx) error
	ListConversations(c fiber.Ctx) error
	GetConversation(c fiber.Ctx) error
	ListMessages(c fiber.Ctx) error
	SendMessage(c fiber.Ctx) error
	MarkMessageRead(c fiber.Ctx) error
	ListNotifications(c fiber.Ctx) error
	MarkNotificationRead(c fiber.Ctx) error
	MarkAllNotificationsRead(c fiber.Ctx) error
	GetUnreadCounts(c fiber.Ctx) error
	AdminListConversations(c fiber.Ctx) error
}

// MessagingHandler handles conversation, message and notification HTTP requests
type MessagingHandler struct {
	flow      businessflow.MessagingFlow
	validator *validator.Validate
}

func (h *MessagingHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *MessagingHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NewMessagingHandler creates a new messaging handler
func NewMessagingHandler(flow businessflow.MessagingFlow) *MessagingHandler {
	return &MessagingHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// CreateConversation opens a thread with its initial message
// @Summary Create Conversation
// @Description Open a conversation together with its first message
// @Tags Messaging
// @Accept json
// @Produce json
// @Param request body dto.CreateConversationRequest true "Conversation subject and initial message"
// @Success 201 {object} dto.APIResponse{data=dto.CreateConversationResponse} "Conversation created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/conversations [post]
func (h *MessagingHandler) CreateConversation(c fiber.Ctx) error {
	var req dto.CreateConversationRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}
	req.AccountID = accountID

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.CreateConversation(h.createRequestContext(c, "/api/v1/conversations"), &req, metadata)
	if err != nil {
		return h.mapAccountError(c, err, "CONVERSATION_CREATE_FAILED", "Failed to create conversation")
	}

	return h.SuccessResponse(c, fiber.StatusCreated, result.Message, result)
}

// ListConversations lists the caller's threads
// @Summary List Conversations
// @Description List the caller's conversations ordered by latest activity, each with its computed unread count and last message
// @Tags Messaging
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param page_size query integer false "Items per page (default: 20, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListConversationsResponse} "Conversations retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/conversations [get]
func (h *MessagingHandler) ListConversations(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	req := &dto.ListConversationsRequest{
		AccountID: accountID,
		Page:      parsePageQuery(c, "page"),
		PageSize:  parsePageQuery(c, "page_size"),
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListConversations(h.createRequestContext(c, "/api/v1/conversations"), req, metadata)
	if err != nil {
		return h.mapAccountError(c, err, "LIST_CONVERSATIONS_FAILED", "Failed to list conversations")
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// GetConversation returns one thread with derived fields
// @Summary Get Conversation
// @Description Return a single conversation the caller owns (staff can read any)
// @Tags Messaging
// @Produce json
// @Param id path integer true "Conversation ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetConversationResponse} "Conversation retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Conversation not found"
// @Router /api/v1/conversations/{id} [get]
func (h *MessagingHandler) GetConversation(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	conversationID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid conversation ID", "INVALID_CONVERSATION_ID", nil)
	}

	req := &dto.GetConversationRequest{AccountID: accountID, ConversationID: conversationID}
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.GetConversation(h.createRequestContext(c, "/api/v1/conversations/:id"), req, metadata)
	if err != nil {
		if businessflow.IsConversationNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Conversation not found", "CONVERSATION_NOT_FOUND", nil)
		}
		if businessflow.IsConversationAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "You do not have access to this conversation", "CONVERSATION_ACCESS_DENIED", nil)
		}
		return h.mapAccountError(c, err, "GET_CONVERSATION_FAILED", "Failed to load conversation")
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListMessages pages through a thread
// @Summary List Messages
// @Description List messages in a conversation, newest first. Conversations outside the caller's reach yield an empty list.
// @Tags Messaging
// @Produce json
// @Param id path integer true "Conversation ID"
// @Param page query integer false "Page number (default: 1)"
// @Param page_size query integer false "Items per page (default: 20, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListMessagesResponse} "Messages retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/conversations/{id}/messages [get]
func (h *MessagingHandler) ListMessages(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	conversationID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid conversation ID", "INVALID_CONVERSATION_ID", nil)
	}

	req := &dto.ListMessagesRequest{
		AccountID:      accountID,
		ConversationID: conversationID,
		Page:           parsePageQuery(c, "page"),
		PageSize:       parsePageQuery(c, "page_size"),
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListMessages(h.createRequestContext(c, "/api/v1/conversations/:id/messages"), req, metadata)
	if err != nil {
		return h.mapAccountError(c, err, "LIST_MESSAGES_FAILED", "Failed to list messages")
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// SendMessage appends to an existing thread
// @Summary Send Message
// @Description Append a message to a conversation the caller owns (staff can reply to any)
// @Tags Messaging
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message content"
// @Success 201 {object} dto.APIResponse{data=dto.SendMessageResponse} "Message sent successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Conversation not found"
// @Router /api/v1/messages [post]
func (h *MessagingHandler) SendMessage(c fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}
	req.AccountID = accountID

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.SendMessage(h.createRequestContext(c, "/api/v1/messages"), &req, metadata)
	if err != nil {
		if businessflow.IsConversationNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Conversation not found", "CONVERSATION_NOT_FOUND", nil)
		}
		if businessflow.IsMessageAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "You cannot post to this conversation", "MESSAGE_ACCESS_DENIED", nil)
		}
		return h.mapAccountError(c, err, "SEND_MESSAGE_FAILED", "Failed to send message")
	}

	return h.SuccessResponse(c, fiber.StatusCreated, result.Message, result)
}

// MarkMessageRead flips one message to read
// @Summary Mark Message Read
// @Description Mark a message as read. Marking your own message reports changed=false and no stored change.
// @Tags Messaging
// @Produce json
// @Param id path integer true "Message ID"
// @Success 200 {object} dto.APIResponse{data=dto.MarkMessageReadResponse} "Read state updated"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Message not found"
// @Router /api/v1/messages/{id}/read [post]
func (h *MessagingHandler) MarkMessageRead(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	messageID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid message ID", "INVALID_MESSAGE_ID", nil)
	}

	req := &dto.MarkMessageReadRequest{AccountID: accountID, MessageID: messageID}
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.MarkMessageRead(h.createRequestContext(c, "/api/v1/messages/:id/read"), req, metadata)
	if err != nil {
		if businessflow.IsMessageNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Message not found", "MESSAGE_NOT_FOUND", nil)
		}
		if businessflow.IsMessageAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "You do not have access to this message", "MESSAGE_ACCESS_DENIED", nil)
		}
		return h.mapAccountError(c, err, "MARK_MESSAGE_READ_FAILED", "Failed to mark message as read")
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// ListNotifications pages through the caller's feed
// @Summary List Notifications
// @Description List the caller's notifications, newest first
// @Tags Notifications
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param page_size query integer false "Items per page (default: 20, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListNotificationsResponse} "Notifications retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/notifications [get]
func (h *MessagingHandler) ListNotifications(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	req := &dto.ListNotificationsRequest{
		AccountID: accountID,
		Page:      parsePageQuery(c, "page"),
		PageSize:  parsePageQuery(c, "page_size"),
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.ListNotifications(h.createRequestContext(c, "/api/v1/notifications"), req, metadata)
	if err != nil {
		return h.mapAccountError(c, err, "LIST_NOTIFICATIONS_FAILED", "Failed to list notifications")
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// MarkNotificationRead flags one owned notification
// @Summary Mark Notification Read
// @Description Mark a single notification as read. Notifications outside the caller's feed yield 404.
// @Tags Notifications
// @Produce json
// @Param id path integer true "Notification ID"
// @Success 200 {object} dto.APIResponse{data=dto.MarkNotificationReadResponse} "Notification marked as read"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Notification not found"
// @Router /api/v1/notifications/{id}/read [post]
func (h *MessagingHandler) MarkNotificationRead(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid notification ID", "INVALID_NOTIFICATION_ID", nil)
	}

	req := &dto.MarkNotificationReadRequest{AccountID: accountID, NotificationID: notificationID}
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.MarkNotificationRead(h.createRequestContext(c, "/api/v1/notifications/:id/read"), req, metadata)
	if err != nil {
		if businessflow.IsNotificationNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Notification not found", "NOTIFICATION_NOT_FOUND", nil)
		}
		return h.mapAccountError(c, err, "MARK_NOTIFICATION_READ_FAILED", "Failed to mark notification as read")
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// MarkAllNotificationsRead flags the caller's whole feed
// @Summary Mark All Notifications Read
// @Description Mark every unread notification of the caller as read
// @Tags Notifications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MarkAllNotificationsReadResponse} "Notifications marked as read"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/notifications/read-all [post]
func (h *MessagingHandler) MarkAllNotificationsRead(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.MarkAllNotificationsRead(h.createRequestContext(c, "/api/v1/notifications/read-all"), accountID, metadata)
	if err != nil {
		return h.mapAccountError(c, err, "MARK_ALL_NOTIFICATIONS_FAILED", "Failed to mark notifications as read")
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// GetUnreadCounts returns the computed badge counters
// @Summary Unread Counts
// @Description Return the caller's unread message and notification counts, computed on demand
// @Tags Notifications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UnreadCountsResponse} "Counts retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/unread-counts [get]
func (h *MessagingHandler) GetUnreadCounts(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.GetUnreadCounts(h.createRequestContext(c, "/api/v1/unread-counts"), accountID, metadata)
	if err != nil {
		return h.mapAccountError(c, err, "UNREAD_COUNTS_FAILED", "Failed to compute unread counts")
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// AdminListConversations pages through every thread
// @Summary Admin List Conversations
// @Description Staff listing of all conversations with participant names and unread counts
// @Tags Admin
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param page_size query integer false "Items per page (default: 20, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListConversationsResponse} "Conversations retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Forbidden - staff only"
// @Router /api/v1/admin/conversations [get]
func (h *MessagingHandler) AdminListConversations(c fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	req := &dto.AdminListConversationsRequest{
		AccountID: accountID,
		Page:      parsePageQuery(c, "page"),
		PageSize:  parsePageQuery(c, "page_size"),
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	result, err := h.flow.AdminListConversations(h.createRequestContext(c, "/api/v1/admin/conversations"), req, metadata)
	if err != nil {
		if businessflow.IsStaffOnly(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Staff access required", "STAFF_ONLY", nil)
		}
		return h.mapAccountError(c, err, "ADMIN_LIST_CONVERSATIONS_FAILED", "Failed to list conversations")
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}

// mapAccountError converts the shared account sentinels, falling back to 500
func (h *MessagingHandler) mapAccountError(c fiber.Ctx, err error, code, message string) error {
	if businessflow.IsAccountNotFound(err) {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", "ACCOUNT_NOT_FOUND", nil)
	}
	if businessflow.IsAccountInactive(err) {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account is inactive", "ACCOUNT_INACTIVE", nil)
	}
	return h.ErrorResponse(c, fiber.StatusInternalServerError, message, code, nil)
}

func (h *MessagingHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *MessagingHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(n), nil
}

// parsePageQuery reads an optional paging query value, zero when absent
func parsePageQuery(c fiber.Ctx, name string) uint {
	if v := c.Query(name); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(n)
		}
	}
	return 0
}

package businessflow

import (
	"context"
	"fmt"
	"time"

	"github.com/arkasoft/arka-portal/app/dto"
	"github.com/arkasoft/arka-portal/app/services"
	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/repository"
	"github.com/arkasoft/arka-portal/utils"
	"gorm.io/gorm"
)

// MessagingFlow defines conversation, message and notification operations
type MessagingFlow interface {
	CreateConversation(ctx context.Context, req *dto.CreateConversationRequest, metadata *ClientMetadata) (*dto.CreateConversationResponse, error)
	ListConversations(ctx context.Context, req *dto.ListConversationsRequest, metadata *ClientMetadata) (*dto.ListConversationsResponse, error)
	GetConversation(ctx context.Context, req *dto.GetConversationRequest, metadata *ClientMetadata) (*dto.GetConversationResponse, error)
	ListMessages(ctx context.Context, req *dto.ListMessagesRequest, metadata *ClientMetadata) (*dto.ListMessagesResponse, error)
	SendMessage(ctx context.Context, req *dto.SendMessageRequest, metadata *ClientMetadata) (*dto.SendMessageResponse, error)
	MarkMessageRead(ctx context.Context, req *dto.MarkMessageReadRequest, metadata *ClientMetadata) (*dto.MarkMessageReadResponse, error)
	ListNotifications(ctx context.Context, req *dto.ListNotificationsRequest, metadata *ClientMetadata) (*dto.ListNotificationsResponse, error)
	MarkNotificationRead(ctx context.Context, req *dto.MarkNotificationReadRequest, metadata *ClientMetadata) (*dto.MarkNotificationReadResponse, error)
	MarkAllNotificationsRead(ctx context.Context, accountID uint, metadata *ClientMetadata) (*dto.MarkAllNotificationsReadResponse, error)
	GetUnreadCounts(ctx context.Context, accountID uint, metadata *ClientMetadata) (*dto.UnreadCountsResponse, error)
	AdminListConversations(ctx context.Context, req *dto.AdminListConversationsRequest, metadata *ClientMetadata) (*dto.ListConversationsResponse, error)
}

// MessagingFlowImpl implements MessagingFlow
type MessagingFlowImpl struct {
	db               *gorm.DB
	accountRepo      repository.AccountRepository
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	notificationRepo repository.NotificationRepository
	notifier         services.NotificationService
}

func NewMessagingFlow(
	db *gorm.DB,
	accountRepo repository.AccountRepository,
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	notificationRepo repository.NotificationRepository,
	notifier services.NotificationService,
) MessagingFlow {
	return &MessagingFlowImpl{
		db:               db,
		accountRepo:      accountRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
	}
}

// CreateConversation opens a thread together with its initial message. Both
// rows land in one transaction: a failed message insert rolls the
// conversation back so no empty thread can ever exist.
func (f *MessagingFlowImpl) CreateConversation(ctx context.Context, req *dto.CreateConversationRequest, metadata *ClientMetadata) (*dto.CreateConversationResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	conversation := models.Conversation{
		ParticipantID: account.ID,
		Subject:       req.Subject,
	}
	message := models.Message{
		SenderID: account.ID,
		Content:  req.Message,
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.conversationRepo.Save(txCtx, &conversation); err != nil {
			return err
		}
		message.ConversationID = conversation.ID
		return f.messageRepo.Save(txCtx, &message)
	})
	if err != nil {
		return nil, NewBusinessError("CONVERSATION_CREATE_FAILED", "Failed to create conversation", err)
	}

	f.notifyStaff(ctx, account, &conversation, req.Message)

	item := f.toConversationItem(&conversation, 0, &message, account.ID)
	item.ParticipantName = fmt.Sprintf("%s %s", account.FirstName, account.LastName)

	return &dto.CreateConversationResponse{
		Message:      "Conversation created successfully",
		Conversation: item,
	}, nil
}

func (f *MessagingFlowImpl) ListConversations(ctx context.Context, req *dto.ListConversationsRequest, metadata *ClientMetadata) (*dto.ListConversationsResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	limit, offset := normalizePage(req.Page, req.PageSize)
	rows, err := f.conversationRepo.ByFilter(ctx, models.ConversationFilter{ParticipantID: &account.ID}, "", limit, offset)
	if err != nil {
		return nil, NewBusinessError("LIST_CONVERSATIONS_FAILED", "Failed to list conversations", err)
	}

	items, err := f.buildConversationItems(ctx, rows, account.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ListConversationsResponse{
		Message:       "Conversations retrieved successfully",
		Conversations: items,
	}, nil
}

func (f *MessagingFlowImpl) GetConversation(ctx context.Context, req *dto.GetConversationRequest, metadata *ClientMetadata) (*dto.GetConversationResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	conversation, err := f.conversationRepo.ByID(ctx, req.ConversationID)
	if err != nil {
		return nil, NewBusinessError("GET_CONVERSATION_FAILED", "Failed to load conversation", err)
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}
	if conversation.ParticipantID != account.ID && !account.IsStaff() {
		return nil, ErrConversationAccessDenied
	}

	unread, err := f.messageRepo.CountUnreadInConversation(ctx, conversation.ID, conversation.ParticipantID)
	if err != nil {
		return nil, NewBusinessError("GET_CONVERSATION_FAILED", "Failed to compute unread count", err)
	}
	last, err := f.messageRepo.LastByConversation(ctx, conversation.ID)
	if err != nil {
		return nil, NewBusinessError("GET_CONVERSATION_FAILED", "Failed to load last message", err)
	}

	return &dto.GetConversationResponse{
		Message:      "Conversation retrieved successfully",
		Conversation: f.toConversationItem(conversation, unread, last, account.ID),
	}, nil
}

// ListMessages returns the thread newest first. A caller outside the
// conversation gets a successful empty list rather than an error; clients
// depend on that shape.
func (f *MessagingFlowImpl) ListMessages(ctx context.Context, req *dto.ListMessagesRequest, metadata *ClientMetadata) (*dto.ListMessagesResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	conversation, err := f.conversationRepo.ByID(ctx, req.ConversationID)
	if err != nil {
		return nil, NewBusinessError("LIST_MESSAGES_FAILED", "Failed to load conversation", err)
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}

	if conversation.ParticipantID != account.ID && !account.IsStaff() {
		return &dto.ListMessagesResponse{
			Message:  "Messages retrieved successfully",
			Messages: []dto.MessageItem{},
		}, nil
	}

	limit, offset := normalizePage(req.Page, req.PageSize)
	rows, err := f.messageRepo.ByFilter(ctx, models.MessageFilter{ConversationID: &conversation.ID}, "", limit, offset)
	if err != nil {
		return nil, NewBusinessError("LIST_MESSAGES_FAILED", "Failed to list messages", err)
	}

	items := make([]dto.MessageItem, 0, len(rows))
	for _, m := range rows {
		items = append(items, toMessageItem(m, account.ID))
	}

	return &dto.ListMessagesResponse{
		Message:  "Messages retrieved successfully",
		Messages: items,
	}, nil
}

func (f *MessagingFlowImpl) SendMessage(ctx context.Context, req *dto.SendMessageRequest, metadata *ClientMetadata) (*dto.SendMessageResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	conversation, err := f.conversationRepo.ByID(ctx, req.ConversationID)
	if err != nil {
		return nil, NewBusinessError("SEND_MESSAGE_FAILED", "Failed to load conversation", err)
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}
	if conversation.ParticipantID != account.ID && !account.IsStaff() {
		return nil, ErrMessageAccessDenied
	}

	message := models.Message{
		ConversationID: conversation.ID,
		SenderID:       account.ID,
		Content:        req.Content,
		Attachment:     req.Attachment,
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.messageRepo.Save(txCtx, &message); err != nil {
			return err
		}
		return f.conversationRepo.Touch(txCtx, conversation.ID)
	})
	if err != nil {
		return nil, NewBusinessError("SEND_MESSAGE_FAILED", "Failed to store message", err)
	}

	if account.ID == conversation.ParticipantID {
		f.notifyStaff(ctx, account, conversation, req.Content)
	} else {
		f.notifyParticipant(ctx, conversation, req.Content)
	}

	return &dto.SendMessageResponse{
		Message: "Message sent successfully",
		Item:    toMessageItem(&message, account.ID),
	}, nil
}

// MarkMessageRead performs the one-way read transition. Marking one's own
// message succeeds without changing anything; a second mark by the reader is
// a no-op and leaves read_at at its first value.
func (f *MessagingFlowImpl) MarkMessageRead(ctx context.Context, req *dto.MarkMessageReadRequest, metadata *ClientMetadata) (*dto.MarkMessageReadResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	message, err := f.messageRepo.ByID(ctx, req.MessageID)
	if err != nil {
		return nil, NewBusinessError("MARK_READ_FAILED", "Failed to load message", err)
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}

	conversation, err := f.conversationRepo.ByID(ctx, message.ConversationID)
	if err != nil {
		return nil, NewBusinessError("MARK_READ_FAILED", "Failed to load conversation", err)
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}
	if conversation.ParticipantID != account.ID && !account.IsStaff() {
		return nil, ErrMessageAccessDenied
	}

	if message.SenderID == account.ID {
		return &dto.MarkMessageReadResponse{
			Message: "Message marked as read",
			Changed: false,
		}, nil
	}

	changed, err := f.messageRepo.MarkRead(ctx, message.ID, account.ID)
	if err != nil {
		return nil, NewBusinessError("MARK_READ_FAILED", "Failed to mark message as read", err)
	}

	return &dto.MarkMessageReadResponse{
		Message: "Message marked as read",
		Changed: changed,
	}, nil
}

func (f *MessagingFlowImpl) ListNotifications(ctx context.Context, req *dto.ListNotificationsRequest, metadata *ClientMetadata) (*dto.ListNotificationsResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	limit, offset := normalizePage(req.Page, req.PageSize)
	rows, err := f.notificationRepo.ByFilter(ctx, models.NotificationFilter{AccountID: &account.ID}, "", limit, offset)
	if err != nil {
		return nil, NewBusinessError("LIST_NOTIFICATIONS_FAILED", "Failed to list notifications", err)
	}

	items := make([]dto.NotificationItem, 0, len(rows))
	for _, n := range rows {
		items = append(items, dto.NotificationItem{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			Type:      n.Type,
			Link:      n.Link,
			IsRead:    utils.IsTrue(n.IsRead),
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}

	return &dto.ListNotificationsResponse{
		Message:       "Notifications retrieved successfully",
		Notifications: items,
	}, nil
}

// MarkNotificationRead flags a single owned notification. An id outside the
// caller's feed reports not-found, never forbidden.
func (f *MessagingFlowImpl) MarkNotificationRead(ctx context.Context, req *dto.MarkNotificationReadRequest, metadata *ClientMetadata) (*dto.MarkNotificationReadResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	changed, err := f.notificationRepo.MarkRead(ctx, req.NotificationID, account.ID)
	if err != nil {
		return nil, NewBusinessError("MARK_NOTIFICATION_FAILED", "Failed to mark notification as read", err)
	}
	if !changed {
		existing, err := f.notificationRepo.ByID(ctx, req.NotificationID)
		if err != nil {
			return nil, NewBusinessError("MARK_NOTIFICATION_FAILED", "Failed to load notification", err)
		}
		if existing == nil || existing.AccountID != account.ID {
			return nil, ErrNotificationNotFound
		}
	}

	return &dto.MarkNotificationReadResponse{Message: "Notification marked as read"}, nil
}

func (f *MessagingFlowImpl) MarkAllNotificationsRead(ctx context.Context, accountID uint, metadata *ClientMetadata) (*dto.MarkAllNotificationsReadResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, accountID)
	if err != nil {
		return nil, err
	}

	if err := f.notificationRepo.MarkAllRead(ctx, account.ID); err != nil {
		return nil, NewBusinessError("MARK_ALL_NOTIFICATIONS_FAILED", "Failed to mark notifications as read", err)
	}

	return &dto.MarkAllNotificationsReadResponse{Message: "All notifications marked as read"}, nil
}

// GetUnreadCounts recomputes both badge counters on every call
func (f *MessagingFlowImpl) GetUnreadCounts(ctx context.Context, accountID uint, metadata *ClientMetadata) (*dto.UnreadCountsResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, accountID)
	if err != nil {
		return nil, err
	}

	messages, err := f.messageRepo.CountUnreadForParticipant(ctx, account.ID)
	if err != nil {
		return nil, NewBusinessError("UNREAD_COUNTS_FAILED", "Failed to count unread messages", err)
	}
	notifications, err := f.notificationRepo.CountUnread(ctx, account.ID)
	if err != nil {
		return nil, NewBusinessError("UNREAD_COUNTS_FAILED", "Failed to count unread notifications", err)
	}

	return &dto.UnreadCountsResponse{
		Message:             "Unread counts retrieved successfully",
		UnreadMessages:      messages,
		UnreadNotifications: notifications,
	}, nil
}

func (f *MessagingFlowImpl) AdminListConversations(ctx context.Context, req *dto.AdminListConversationsRequest, metadata *ClientMetadata) (*dto.ListConversationsResponse, error) {
	staff, err := getStaff(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	limit, offset := normalizePage(req.Page, req.PageSize)
	rows, err := f.conversationRepo.ByFilter(ctx, models.ConversationFilter{}, "", limit, offset)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LIST_CONVERSATIONS_FAILED", "Failed to list conversations", err)
	}

	items, err := f.buildConversationItems(ctx, rows, staff.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ListConversationsResponse{
		Message:       "Conversations retrieved successfully",
		Conversations: items,
	}, nil
}

func (f *MessagingFlowImpl) buildConversationItems(ctx context.Context, rows []*models.Conversation, viewerID uint) ([]dto.ConversationItem, error) {
	items := make([]dto.ConversationItem, 0, len(rows))
	for _, c := range rows {
		unread, err := f.messageRepo.CountUnreadInConversation(ctx, c.ID, c.ParticipantID)
		if err != nil {
			return nil, NewBusinessError("LIST_CONVERSATIONS_FAILED", "Failed to compute unread count", err)
		}
		last, err := f.messageRepo.LastByConversation(ctx, c.ID)
		if err != nil {
			return nil, NewBusinessError("LIST_CONVERSATIONS_FAILED", "Failed to load last message", err)
		}
		items = append(items, f.toConversationItem(c, unread, last, viewerID))
	}
	return items, nil
}

func (f *MessagingFlowImpl) toConversationItem(c *models.Conversation, unread int64, last *models.Message, viewerID uint) dto.ConversationItem {
	item := dto.ConversationItem{
		ID:            c.ID,
		UUID:          c.UUID.String(),
		Subject:       c.Subject,
		ParticipantID: c.ParticipantID,
		IsActive:      utils.IsTrue(c.IsActive),
		UnreadCount:   unread,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
	if c.Participant != nil {
		item.ParticipantName = fmt.Sprintf("%s %s", c.Participant.FirstName, c.Participant.LastName)
	}
	if last != nil {
		li := toMessageItem(last, viewerID)
		item.LastMessage = &li
	}
	return item
}

func toMessageItem(m *models.Message, viewerID uint) dto.MessageItem {
	item := dto.MessageItem{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		IsOwn:          m.SenderID == viewerID,
		Content:        m.Content,
		Attachment:     m.Attachment,
		IsRead:         utils.IsTrue(m.IsRead),
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
	if m.Sender != nil {
		item.SenderName = fmt.Sprintf("%s %s", m.Sender.FirstName, m.Sender.LastName)
	}
	if m.ReadAt != nil {
		item.ReadAt = utils.ToPtr(m.ReadAt.Format(time.RFC3339))
	}
	return item
}

// notifyStaff fans a notification out to every active staff account and is
// best-effort: a failed insert or email never fails the originating request.
func (f *MessagingFlowImpl) notifyStaff(ctx context.Context, sender *models.Account, conversation *models.Conversation, content string) {
	staff, err := f.accountRepo.ListStaff(ctx)
	if err != nil {
		return
	}

	link := fmt.Sprintf("/messaging/conversations/%d", conversation.ID)
	title := fmt.Sprintf("New message from %s %s", sender.FirstName, sender.LastName)
	for _, s := range staff {
		if s.ID == sender.ID {
			continue
		}
		n := models.Notification{
			AccountID: s.ID,
			Title:     title,
			Body:      truncate(content, 200),
			Type:      models.NotificationTypeMessage,
			Link:      utils.ToPtr(link),
		}
		_ = f.notificationRepo.Save(ctx, &n)
	}
}

// notifyParticipant records a feed entry and sends a best-effort email to the
// thread owner when staff replies
func (f *MessagingFlowImpl) notifyParticipant(ctx context.Context, conversation *models.Conversation, content string) {
	participant, err := f.accountRepo.ByID(ctx, conversation.ParticipantID)
	if err != nil || participant == nil {
		return
	}

	link := fmt.Sprintf("/messaging/conversations/%d", conversation.ID)
	n := models.Notification{
		AccountID: participant.ID,
		Title:     fmt.Sprintf("New reply in: %s", truncate(conversation.Subject, 100)),
		Body:      truncate(content, 200),
		Type:      models.NotificationTypeMessage,
		Link:      utils.ToPtr(link),
	}
	_ = f.notificationRepo.Save(ctx, &n)

	if f.notifier != nil {
		subject := fmt.Sprintf("New reply in conversation: %s", conversation.Subject)
		go func() {
			_ = f.notifier.SendEmail(participant.Email, subject, truncate(content, 500))
		}()
	}
}

func truncate(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max]) + "…"
}

package chat

import (
	"context"
	"fmt"
	"testing"

	"neuroglove/models"

	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type memChatRepo struct {
	messages  []models.ChatMessage
	insertErr error
}

func (r *memChatRepo) Insert(msg *models.ChatMessage) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *memChatRepo) History(userID string, limit int64) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for i := len(r.messages) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if r.messages[i].UserID == userID {
			out = append(out, r.messages[i])
		}
	}
	return out, nil
}

func TestSend_PersistsExchange(t *testing.T) {
	repo := &memChatRepo{}
	svc := &DefaultChatService{Generator: &stubGenerator{reply: "pong"}, Repo: repo}

	reply, err := svc.Send(context.Background(), "user-1", "ping")
	require.NoError(t, err)
	require.Equal(t, "pong", reply)

	require.Len(t, repo.messages, 1)
	require.Equal(t, "ping", repo.messages[0].Message)
	require.Equal(t, "pong", repo.messages[0].Response)
}

func TestSend_GeneratorErrorPropagates(t *testing.T) {
	repo := &memChatRepo{}
	svc := &DefaultChatService{
		Generator: &stubGenerator{err: fmt.Errorf("model unavailable")},
		Repo:      repo,
	}

	_, err := svc.Send(context.Background(), "user-1", "ping")
	require.Error(t, err)
	require.Empty(t, repo.messages)
}

func TestSend_HistoryWriteFailureKeepsReply(t *testing.T) {
	repo := &memChatRepo{insertErr: fmt.Errorf("write concern failed")}
	svc := &DefaultChatService{Generator: &stubGenerator{reply: "pong"}, Repo: repo}

	reply, err := svc.Send(context.Background(), "user-1", "ping")
	require.NoError(t, err)
	require.Equal(t, "pong", reply)
}

func TestHistory_ScopedAndNewestFirst(t *testing.T) {
	repo := &memChatRepo{}
	svc := &DefaultChatService{Generator: &stubGenerator{reply: "ok"}, Repo: repo}

	for i := 0; i < 3; i++ {
		_, err := svc.Send(context.Background(), "user-1", fmt.Sprintf("msg-%d", i))
		require.NoError(t, err)
	}
	_, err := svc.Send(context.Background(), "user-2", "other")
	require.NoError(t, err)

	history, err := svc.History("user-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, "msg-2", history[0].Message)
	require.Equal(t, "msg-0", history[2].Message)
}

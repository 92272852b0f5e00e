package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	chaterrors "clarityflow/internal/chat/errors"
	"clarityflow/internal/company"
	"clarityflow/internal/domain"
	"clarityflow/internal/sale"
	"clarityflow/internal/task"

	"go.uber.org/zap"
)

// ChatContext adalah snapshot konteks bersama yang dikirim bersama setiap
// pertanyaan ke remote reasoning service.
type ChatContext struct {
	User      domain.User       `json:"user"`
	Companies []company.Company `json:"companies"`
	Employees []domain.User     `json:"employees"`
	Tasks     []task.Task       `json:"tasks"`
	Sales     []sale.Sale       `json:"sales"`
}

type ReasonRequest struct {
	Question string      `json:"question"`
	Context  ChatContext `json:"context"`
	Action   string      `json:"action,omitempty"`
	Type     string      `json:"type,omitempty"`
}

type ReasonReply struct {
	Answer string         `json:"answer"`
	Action string         `json:"action,omitempty"`
	Type   string         `json:"type,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// Reasoner adalah port ke remote reasoning service. Implementasi lain
// (mock di test, provider berbeda) cukup memenuhi kontrak ini.
type Reasoner interface {
	Ask(ctx context.Context, req ReasonRequest) (*ReasonReply, error)
}

type httpReasoner struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewHTTPReasoner(baseURL, apiKey string, timeout time.Duration, logger ...*zap.Logger) Reasoner {
	l := zap.L().Named("chat.reasoner")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.reasoner")
	}
	return &httpReasoner{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: l,
	}
}

func (r *httpReasoner) Ask(ctx context.Context, req ReasonRequest) (*ReasonReply, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, chaterrors.ErrRemoteService.WithDetails(err.Error())
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/ai/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, chaterrors.ErrRemoteService.WithDetails(err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", r.apiKey)

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		r.logger.Warn("reasoner request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", chaterrors.ErrRemoteService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", chaterrors.ErrRemoteService, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Warn("reasoner returned non-2xx",
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: HTTP %d: %s", chaterrors.ErrRemoteService, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var reply ReasonReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", chaterrors.ErrRemoteService, err)
	}

	return &reply, nil
}

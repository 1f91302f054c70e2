package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"slack-todo/internal/models"
	"slack-todo/internal/slack"
	"slack-todo/pkg/logger"
)

// CreateCommand handles the /todo slash command. Empty text opens the
// create modal and records a pending action; non-empty text inserts the
// todo directly and confirms over the command's response URL. Slack
// ignores the response body, so every branch ends 200.
func (ct *Controller) CreateCommand(c *gin.Context) {
	ctx := c.Request.Context()
	var cmd slack.Command
	if err := c.ShouldBind(&cmd); err != nil {
		logger.Error(ctx, "CreateCommand bind failed", "error", err)
		c.Status(http.StatusOK)
		return
	}

	if strings.TrimSpace(cmd.Text) == "" {
		ct.openCreateModal(ctx, &cmd)
	} else {
		ct.createTodo(ctx, &cmd)
	}
	c.Status(http.StatusOK)
}

// openCreateModal opens the create-todo dialog and records a pending
// action keyed by the opened view's id so the submission can be matched
// back later.
func (ct *Controller) openCreateModal(ctx context.Context, cmd *slack.Command) {
	doc, err := ct.templates.Modal("create")
	if err != nil {
		logger.Error(ctx, "CreateCommand load modal failed", "error", err)
		return
	}
	doc = doc.Fill(map[string]string{"channel": cmd.ChannelID})

	viewID, err := ct.slack.OpenModal(ctx, cmd.TriggerID, doc)
	if err != nil {
		logger.Error(ctx, "CreateCommand open modal failed", "error", err)
		return
	}

	action := &models.Action{
		Type:         models.ActionCreateModal,
		SlackID:      viewID,
		SlackUser:    cmd.UserID,
		SlackChannel: cmd.ChannelID,
	}
	if err := ct.actions.Insert(ctx, action); err != nil {
		logger.Error(ctx, "CreateCommand insert action failed", "error", err, "view_id", viewID)
	}
}

// createTodo inserts a todo titled with the command text and confirms via
// the one-time response URL. The reply is best effort: a failed post
// leaves the persisted todo in place.
func (ct *Controller) createTodo(ctx context.Context, cmd *slack.Command) {
	todo := &models.Todo{Title: cmd.Text, SlackUser: cmd.UserID}
	if err := ct.todos.Insert(ctx, todo); err != nil {
		logger.Error(ctx, "CreateCommand insert todo failed", "error", err)
		return
	}

	doc, err := ct.templates.Block("created")
	if err != nil {
		logger.Error(ctx, "CreateCommand load created template failed", "error", err)
		return
	}
	doc = doc.Fill(map[string]string{
		"title":       todo.Title,
		"description": todo.Description,
	})
	if err := ct.slack.SendWebhook(ctx, cmd.ResponseURL, doc, true); err != nil {
		logger.Error(ctx, "CreateCommand webhook reply failed", "error", err)
	}
}

// ListCommand handles the /todo-list slash command: lists up to five todos
// of the invoker, or of the user mentioned in the command text.
func (ct *Controller) ListCommand(c *gin.Context) {
	ctx := c.Request.Context()
	var cmd slack.Command
	if err := c.ShouldBind(&cmd); err != nil {
		logger.Error(ctx, "ListCommand bind failed", "error", err)
		c.Status(http.StatusOK)
		return
	}
	c.Status(http.StatusOK)

	target := slack.Mention{ID: cmd.UserID, Display: cmd.UserName}
	if text := strings.TrimSpace(cmd.Text); text != "" {
		var err error
		if target, err = slack.ParseMention(text); err != nil {
			logger.Error(ctx, "ListCommand mention parse failed", "error", err)
			return
		}
	}

	todos, err := ct.todos.FetchByUser(ctx, target.ID, listLimit)
	if err != nil {
		logger.Error(ctx, "ListCommand fetch todos failed", "error", err)
		return
	}

	if len(todos) == 0 {
		if err := ct.slack.SendMessage(ctx, "No todos found for "+target.Display+".", cmd.ChannelID); err != nil {
			logger.Error(ctx, "ListCommand empty reply failed", "error", err)
		}
		return
	}

	entry, err := ct.templates.Block("todo")
	if err != nil {
		logger.Error(ctx, "ListCommand load todo template failed", "error", err)
		return
	}
	rendered := make([]string, 0, len(todos))
	for _, todo := range todos {
		rendered = append(rendered, entry.Fill(map[string]string{
			"title":       todo.Title,
			"description": todo.Description,
		}).String())
	}

	doc, err := ct.templates.Block("list")
	if err != nil {
		logger.Error(ctx, "ListCommand load list template failed", "error", err)
		return
	}
	doc = doc.Fill(map[string]string{
		"blocks": strings.Join(rendered, ","),
		"user":   target.Display,
	})
	blocks, err := doc.Blocks()
	if err != nil {
		logger.Error(ctx, "ListCommand extract blocks failed", "error", err)
		return
	}
	if err := ct.slack.SendBlocks(ctx, cmd.ChannelID, blocks); err != nil {
		logger.Error(ctx, "ListCommand reply failed", "error", err)
	}
}

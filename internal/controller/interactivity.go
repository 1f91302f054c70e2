package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"slack-todo/internal/models"
	"slack-todo/internal/slack"
	"slack-todo/pkg/logger"
)

// Input block/action ids of the create modal, matching
// templates/modals/create.modal.json.
const (
	titleBlockID        = "input-title"
	titleActionID       = "input-title-action"
	descriptionBlockID  = "input-description"
	descriptionActionID = "input-description-action"
)

// Interactivity handles Slack's interactivity webhook. Only view
// submissions matter here; every other interaction type is a no-op. The
// submitted view's id is matched against the pending-action table to
// recover the command context that opened it.
func (ct *Controller) Interactivity(c *gin.Context) {
	ctx := c.Request.Context()
	c.Status(http.StatusOK)

	var in slack.Interaction
	if err := c.ShouldBind(&in); err != nil {
		logger.Error(ctx, "Interactivity bind failed", "error", err)
		return
	}
	var payload slack.InteractionPayload
	if err := json.Unmarshal([]byte(in.Payload), &payload); err != nil {
		logger.Error(ctx, "Interactivity payload parse failed", "error", err)
		return
	}
	if payload.Type != "view_submission" {
		return
	}

	action, err := ct.actions.FetchBySlackID(ctx, payload.View.ID)
	if err != nil {
		logger.Error(ctx, "Interactivity action lookup failed", "error", err, "view_id", payload.View.ID)
		return
	}

	switch action.Type {
	case models.ActionCreateModal:
		ct.handleModalCreate(ctx, action, &payload.View)
	default:
		// Only create_modal is ever inserted; anything else means the
		// actions table was corrupted.
		logger.Error(ctx, "Interactivity unknown action type", "type", string(action.Type), "action_id", action.ID)
	}
}

// handleModalCreate resolves a submitted create-todo modal: consume the
// pending action, insert the todo for the user who opened the modal, and
// confirm with an ephemeral message in the originating channel.
func (ct *Controller) handleModalCreate(ctx context.Context, action *models.Action, view *slack.InteractionView) {
	if err := ct.actions.Delete(ctx, action.ID); err != nil {
		logger.Error(ctx, "Interactivity delete action failed", "error", err, "action_id", action.ID)
		return
	}

	// Title is enforced required by the modal itself; a submission without
	// it is malformed.
	title, ok := view.StateValue(titleBlockID, titleActionID)
	if !ok || title == "" {
		logger.Error(ctx, "Interactivity submission missing title", "view_id", view.ID)
		return
	}
	description, _ := view.StateValue(descriptionBlockID, descriptionActionID)

	todo := &models.Todo{
		Title:       title,
		Description: description,
		SlackUser:   action.SlackUser,
	}
	if err := ct.todos.Insert(ctx, todo); err != nil {
		logger.Error(ctx, "Interactivity insert todo failed", "error", err)
		return
	}

	doc, err := ct.templates.Block("created")
	if err != nil {
		logger.Error(ctx, "Interactivity load created template failed", "error", err)
		return
	}
	blocks, err := doc.Fill(map[string]string{
		"title":       todo.Title,
		"description": todo.Description,
	}).Blocks()
	if err != nil {
		logger.Error(ctx, "Interactivity extract blocks failed", "error", err)
		return
	}
	if err := ct.slack.SendEphemeral(ctx, blocks, action.SlackChannel, action.SlackUser); err != nil {
		logger.Error(ctx, "Interactivity ephemeral reply failed", "error", err)
	}
}

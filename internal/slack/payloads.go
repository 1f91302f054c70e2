package slack

// Command is the form-encoded body of a slash command invocation.
type Command struct {
	TeamID      string `form:"team_id"`
	TeamDomain  string `form:"team_domain"`
	ChannelID   string `form:"channel_id"`
	UserID      string `form:"user_id"`
	UserName    string `form:"user_name"`
	Command     string `form:"command"`
	Text        string `form:"text"`
	ResponseURL string `form:"response_url"`
	TriggerID   string `form:"trigger_id"`
	APIAppID    string `form:"api_app_id"`
}

// Interaction is the form-encoded body of an interactivity webhook: a
// single payload field holding JSON text.
type Interaction struct {
	Payload string `form:"payload"`
}

// InteractionPayload is the parsed interactivity payload. Only the fields
// this bot reads are declared.
type InteractionPayload struct {
	Type string          `json:"type"`
	User InteractionUser `json:"user"`
	View InteractionView `json:"view"`
}

type InteractionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	TeamID   string `json:"team_id"`
}

// InteractionView identifies the submitted view and carries the values the
// user typed into its input blocks, keyed by block id then action id.
type InteractionView struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	CallbackID      string `json:"callback_id"`
	PrivateMetadata string `json:"private_metadata"`
	State           struct {
		Values map[string]map[string]struct {
			Value string `json:"value"`
		} `json:"values"`
	} `json:"state"`
}

// StateValue returns the submitted value at state.values[blockID][actionID]
// and whether that path exists.
func (v *InteractionView) StateValue(blockID, actionID string) (string, bool) {
	block, ok := v.State.Values[blockID]
	if !ok {
		return "", false
	}
	input, ok := block[actionID]
	if !ok {
		return "", false
	}
	return input.Value, true
}

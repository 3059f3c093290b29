package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bookkeeper/internal/core"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

// Commentary is the structured plain-language read of a statement bundle.
// It is presentation only: nothing here ever feeds back into computation.
type Commentary struct {
	Headline    string   `json:"headline" jsonschema_description:"One-sentence summary of the financial position"`
	Summary     string   `json:"summary" jsonschema_description:"Short plain-language narrative over the statements, two or three paragraphs"`
	Watchpoints []string `json:"watchpoints" jsonschema_description:"Up to five concrete items that need the owner's attention, most urgent first"`
}

// AgentService describes the commentary agent to its callers.
type AgentService interface {
	ExplainBundle(ctx context.Context, bundle *core.StatementBundle) (*Commentary, error)
}

type Agent struct {
	client *openai.Client
}

func NewAgent(apiKey string) *Agent {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Agent{client: &client}
}

// ExplainBundle asks the model for a structured commentary over the computed
// statements. Only a compact numeric digest is sent, never the raw ledger.
func (a *Agent) ExplainBundle(ctx context.Context, bundle *core.StatementBundle) (*Commentary, error) {
	digest, err := json.MarshalIndent(digestOf(bundle), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to build digest: %w", err)
	}

	prompt := fmt.Sprintf(`You are an accountant explaining a small business's monthly figures to its owner.
The figures below were computed from the business ledger as of %s.
Rules:
1. Use ONLY the figures provided. Do not invent numbers.
2. Write for a non-accountant. No jargon without a one-phrase explanation.
3. Mention every anomaly listed, and say what the owner should check.
4. Keep the headline under 20 words.

Figures:
%s`, bundle.AsOf.Format("2006-01-02"), digest)

	schemaJSON, err := json.Marshal(generateSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "statement_commentary",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("Plain-language commentary over a set of financial statements"),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return nil, fmt.Errorf("empty response content")
	}

	var commentary Commentary
	if err := json.Unmarshal([]byte(content), &commentary); err != nil {
		return nil, fmt.Errorf("failed to parse commentary: %w", err)
	}
	if strings.TrimSpace(commentary.Headline) == "" {
		return nil, fmt.Errorf("commentary has no headline")
	}

	return &commentary, nil
}

func generateSchema() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var c Commentary
	return reflector.Reflect(c)
}

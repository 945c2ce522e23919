package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/executor"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/models"
)

// DiagnoseInput is the MCP tool input schema (matches HTTP API field names).
type DiagnoseInput struct {
	ReportID string   `json:"report_id,omitempty" jsonschema:"optional report identifier"`
	Entries  []string `json:"entries" jsonschema:"equal-width binary strings, one per report line"`
}

// DiagnoseOutput flattens the report into the tool's structured result.
type DiagnoseOutput struct {
	ReportID         string `json:"report_id"`
	Fingerprint      string `json:"fingerprint"`
	EntryCount       int    `json:"entry_count"`
	Width            int    `json:"width"`
	Gamma            string `json:"gamma"`
	Epsilon          string `json:"epsilon"`
	PowerConsumption uint64 `json:"power_consumption"`
	OxygenGenerator  string `json:"oxygen_generator"`
	CO2Scrubber      string `json:"co2_scrubber"`
	LifeSupport      uint64 `json:"life_support"`
	Cached           bool   `json:"cached"`
}

// NewServer returns an MCP server exposing the diagnose_report tool.
func NewServer(exec *executor.Executor, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "diagnostics",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "diagnose_report",
		Description: "Compute power consumption (gamma x epsilon) and life support (oxygen generator x CO2 scrubber) ratings of a binary diagnostic report",
	}, NewDiagnoseHandler(exec))

	return server
}

// NewDiagnoseHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewDiagnoseHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, DiagnoseInput) (*mcp.CallToolResult, DiagnoseOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DiagnoseInput) (*mcp.CallToolResult, DiagnoseOutput, error) {
		return DiagnoseReport(ctx, exec, req, input)
	}
}

// DiagnoseReport runs the diagnostics and returns the flattened report.
func DiagnoseReport(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	input DiagnoseInput,
) (*mcp.CallToolResult, DiagnoseOutput, error) {
	report, err := exec.Execute(ctx, models.DiagnosticRequest{
		ReportID: input.ReportID,
		Entries:  input.Entries,
	})
	if err != nil {
		return nil, DiagnoseOutput{}, err
	}

	return nil, DiagnoseOutput{
		ReportID:         report.ID,
		Fingerprint:      report.Fingerprint,
		EntryCount:       report.EntryCount,
		Width:            report.Width,
		Gamma:            report.Power.Gamma,
		Epsilon:          report.Power.Epsilon,
		PowerConsumption: report.Power.Product,
		OxygenGenerator:  report.LifeSupport.OxygenGenerator,
		CO2Scrubber:      report.LifeSupport.CO2Scrubber,
		LifeSupport:      report.LifeSupport.Product,
		Cached:           report.Cached,
	}, nil
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP streamable HTTP endpoint")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobboard-mcp-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	listTools(ctx, session)

	jobID := listAllJobs(ctx, session)
	searchJobs(ctx, session)
	getJobDetails(ctx, session, jobID)
	getCompanies(ctx, session)
	getTechStacks(ctx, session)

	fmt.Println("\nAll calls completed")
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTOOLS:")

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("ListTools failed: %v", err)
	}

	for _, tool := range tools.Tools {
		fmt.Printf("  %s - %s\n", tool.Name, tool.Description)
	}
}

// listAllJobs dumps the collection and returns the first job ID for the
// detail lookup below.
func listAllJobs(ctx context.Context, session *mcp.ClientSession) string {
	fmt.Println("\nCALL: list_all_jobs")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_all_jobs",
		Arguments: map[string]any{},
	})
	if err != nil {
		log.Printf("list_all_jobs failed: %v", err)
		return ""
	}
	printResult(result)

	var payload struct {
		Jobs []struct {
			ID string `json:"id"`
		} `json:"jobs"`
	}
	if err := decodeStructured(result, &payload); err != nil || len(payload.Jobs) == 0 {
		return ""
	}
	return payload.Jobs[0].ID
}

func searchJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nCALL: search_jobs (remote_only + visa_sponsorship)")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "search_jobs",
		Arguments: map[string]any{
			"remote_only":      true,
			"visa_sponsorship": true,
		},
	})
	if err != nil {
		log.Printf("search_jobs failed: %v", err)
		return
	}
	printResult(result)
}

func getJobDetails(ctx context.Context, session *mcp.ClientSession, jobID string) {
	if jobID == "" {
		log.Println("get_job_details skipped: no job ID available")
		return
	}

	fmt.Printf("\nCALL: get_job_details (%s)\n", jobID)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "get_job_details",
		Arguments: map[string]any{
			"job_id": jobID,
		},
	})
	if err != nil {
		log.Printf("get_job_details failed: %v", err)
		return
	}
	printResult(result)
}

func getCompanies(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nCALL: get_companies")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_companies",
		Arguments: map[string]any{},
	})
	if err != nil {
		log.Printf("get_companies failed: %v", err)
		return
	}
	printResult(result)
}

func getTechStacks(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nCALL: get_tech_stacks")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_tech_stacks",
		Arguments: map[string]any{},
	})
	if err != nil {
		log.Printf("get_tech_stacks failed: %v", err)
		return
	}
	printResult(result)
}

func decodeStructured(res *mcp.CallToolResult, out any) error {
	raw, err := json.Marshal(res.StructuredContent)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}

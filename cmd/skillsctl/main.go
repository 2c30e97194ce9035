// Command skillsctl is a small CLI for exercising the skills client
// against a live provider. API keys come from the environment (a .env
// file in the working directory is loaded if present).
//
// Usage:
//
//	skillsctl [flags] list
//	skillsctl [flags] get <skill-id>
//	skillsctl [flags] create <display-title> <file>...
//	skillsctl [flags] delete <skill-id>
//	skillsctl [flags] versions <skill-id>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/skillgate/skillgate/pkg/api"
	"github.com/skillgate/skillgate/pkg/client"
)

func main() {
	// Best effort; absent .env is fine.
	_ = godotenv.Load()

	providerName := flag.String("provider", "", "provider to call (anthropic or openai; default anthropic)")
	apiBase := flag.String("api-base", "", "override the provider API base URL")
	timeout := flag.Duration("timeout", 60*time.Second, "request timeout")
	limit := flag.Int("limit", 0, "page size for list commands")
	page := flag.String("page", "", "pagination token for list commands")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	c := client.New(client.Config{})
	opts := &client.Options{
		Provider: *providerName,
		APIBase:  *apiBase,
		Timeout:  *timeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		result any
		err    error
	)
	args := flag.Args()
	switch args[0] {
	case "list":
		result, err = c.ListSkills(ctx, &api.ListSkillsParams{Limit: *limit, Page: *page}, opts)
	case "get":
		result, err = c.GetSkill(ctx, arg(args, 1, "skill-id"), opts)
	case "create":
		if len(args) < 3 {
			fail("create needs a display title and at least one file")
		}
		result, err = c.CreateSkill(ctx, &api.CreateSkillRequest{
			DisplayTitle: args[1],
			Files:        args[2:],
		}, opts)
	case "delete":
		result, err = c.DeleteSkill(ctx, arg(args, 1, "skill-id"), opts)
	case "versions":
		result, err = c.ListSkillVersions(ctx, arg(args, 1, "skill-id"), nil, opts)
	default:
		fail(fmt.Sprintf("unknown command %q", args[0]))
	}

	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "error (%s): %s\n", apiErr.Type, apiErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Printf("%s\n", out)
}

func arg(args []string, i int, name string) string {
	if len(args) <= i {
		fail(fmt.Sprintf("%s argument is required", name))
	}
	return args[i]
}

func fail(msg string) {
	fmt.Fprintf(os.Stderr, "skillsctl: %s\n", msg)
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, `skillsctl - skills API command line client

Commands:
  list                          list skills
  get <skill-id>                fetch a single skill
  create <title> <file>...      create a skill from files
  delete <skill-id>             delete a skill
  versions <skill-id>           list versions of a skill

Flags:
`)
	flag.PrintDefaults()
}

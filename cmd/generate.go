package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rdesai/drill/internal/bank"
	"github.com/rdesai/drill/internal/llm"
	"github.com/rdesai/drill/internal/quizgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new question bank with an LLM",
	Long: `Generate a question bank on a topic of your choosing and write it to
the banks directory, where it is picked up on the next run.

Requires an LLM API key (DRILL_ANTHROPIC_API_KEY, DRILL_OPENAI_API_KEY,
DRILL_GEMINI_API_KEY, or the provider's standard env var).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "Topic to quiz on, e.g. \"Go concurrency\" (required)")
	generateCmd.Flags().String("name", "", "Bank title (defaults to the topic)")
	generateCmd.Flags().String("id", "", "Bank ID (defaults to a slug of the topic)")
	generateCmd.Flags().Int("count", 10, "Number of questions to generate")
	generateCmd.Flags().String("audience", "a self-taught programmer", "Who the questions are for")
	generateCmd.Flags().String("difficulty", "intermediate", "Difficulty: beginner, intermediate, or advanced")
	generateCmd.Flags().String("out", "", "Output file (defaults to <banks-dir>/<id>.json)")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	name, _ := cmd.Flags().GetString("name")
	id, _ := cmd.Flags().GetString("id")
	count, _ := cmd.Flags().GetInt("count")
	audience, _ := cmd.Flags().GetString("audience")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	out, _ := cmd.Flags().GetString("out")

	if name == "" {
		name = topic
	}
	if id == "" {
		id = slugify(topic)
	}
	if out == "" {
		dir, err := bank.DefaultBanksDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create banks dir: %w", err)
		}
		out = filepath.Join(dir, id+".json")
	}

	ctx := cmd.Context()
	client, err := llm.OpenDefault(ctx)
	if err != nil {
		return fmt.Errorf("LLM client: %w", err)
	}

	gen := quizgen.New(client, quizgen.DefaultConfig())

	fmt.Printf("Generating %d questions on %q with %s...\n", count, topic, client.Model())
	b, err := gen.GenerateBank(ctx, quizgen.BankInput{
		ID:         id,
		Name:       name,
		Topic:      topic,
		Audience:   audience,
		Difficulty: difficulty,
		Count:      count,
	})
	if err != nil {
		return fmt.Errorf("generate bank: %w", err)
	}

	if err := b.WriteFile(out); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}

	fmt.Printf("Wrote %d questions to %s\n", len(b.Questions), out)
	return nil
}

// slugify turns "Go Concurrency Patterns!" into "go-concurrency-patterns".
func slugify(s string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

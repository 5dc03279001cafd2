package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/evranch/atlas"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	ai   bool
	stay bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "add a friend from a spoken-style phrase" }
func (*assistCmd) Usage() string {
	return `atlas assist [-ai] [-stay] <phrase>

  Turns a phrase like "add maria in porto portugal" into a friend record,
  contacted today. With -ai, an unparseable phrase is handed to Gemini
  (requires GEMINI_API_KEY) to extract the name and location.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.ai, "ai", false, "Fall back to Gemini when the phrase doesn't parse.")
	f.BoolVar(&c.stay, "stay", false, "The new friend can host you.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	phrase := strings.Join(f.Args(), " ")
	if strings.TrimSpace(phrase) == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to parse, give me a phrase")
		return subcommands.ExitUsageError
	}

	req, ok := atlas.ParseAddUtterance(phrase)
	if !ok && c.ai {
		var err error
		req, err = askGemini(ctx, phrase)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error asking Gemini: %v\n", err)
			return subcommands.ExitFailure
		}
		ok = req.Name != "" && req.Location != ""
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Could not understand %q. Try: add NAME in LOCATION\n", phrase)
		return subcommands.ExitFailure
	}

	friend := atlas.Friend{
		Name:        req.Name,
		Location:    req.Location,
		Coordinates: Geocoder().Locate(req.Location),
		LastContact: atlas.Today(),
		CanStay:     c.stay,
	}
	stored, err := LoadFriendStore().Add(friend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding friend: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s in %s (%s)\n", stored.Name, stored.Location, stored.ID)
	return subcommands.ExitSuccess
}

// askGemini extracts "NAME|LOCATION" from a free-form phrase.
func askGemini(ctx context.Context, phrase string) (atlas.AddRequest, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return atlas.AddRequest{}, fmt.Errorf("cannot initialize Gemini's client: %w", err)
	}
	chat, err := client.Chats.Create(ctx, "gemini-2.0-flash", nil, nil)
	if err != nil {
		return atlas.AddRequest{}, err
	}

	prompt := fmt.Sprintf("Extract the person's name and their location from this phrase: %q.\nAnswer with exactly one line in the form NAME|LOCATION, nothing else.", phrase)
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return atlas.AddRequest{}, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return atlas.AddRequest{}, fmt.Errorf("no response from Gemini")
	}

	answer := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	name, location, found := strings.Cut(answer, "|")
	if !found {
		return atlas.AddRequest{}, fmt.Errorf("unexpected answer %q", answer)
	}
	return atlas.AddRequest{
		Name:     strings.TrimSpace(name),
		Location: strings.TrimSpace(location),
	}, nil
}

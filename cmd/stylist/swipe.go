package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"totem-fashion/internal/domain"
	"totem-fashion/internal/service"
)

func newSwipeCmd(opts *cliOptions) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "swipe",
		Short: "Interactive swipe session against the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildStylist(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return runSwipe(cmd, svc, category, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "restrict the deck to a category")
	return cmd
}

func runSwipe(cmd *cobra.Command, svc *service.StylistService, category string, in io.Reader, out io.Writer) error {
	ctx := cmd.Context()
	reader := bufio.NewReader(in)

	profile, err := svc.CreateSession(ctx)
	if err != nil {
		return err
	}
	sessionID := profile.SessionID
	fmt.Fprintf(out, "===== Session %s =====\n", sessionID)

	deck := svc.Discover(ctx, sessionID, category)
	if len(deck) == 0 {
		fmt.Fprintln(out, "Empty catalog.")
		return nil
	}

loop:
	for _, item := range deck {
		fmt.Fprintf(out, "\n[%s] %s | %s | %s | %.2f\n", item.ID, item.Name, item.Category, item.Color, item.Price)
		fmt.Fprint(out, "(l)ike, (d)islike, (o)utfit, (s)kip, (q)uit > ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		var rec domain.Recommendation
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "l":
			rec, err = svc.Like(ctx, sessionID, item)
		case "d":
			rec, err = svc.Dislike(ctx, sessionID, item)
		case "o":
			outfit, err := svc.ComposeOutfit(ctx, sessionID, item.ID, nil)
			if err != nil {
				return err
			}
			printOutfit(out, outfit)
			continue
		case "q":
			break loop
		default:
			continue
		}
		if err != nil {
			return err
		}
		printRecommendation(out, rec)
	}

	profile, err = svc.GetProfile(ctx, sessionID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nLikes: %d | Dislikes: %d", len(profile.Preferences.Likes), len(profile.Preferences.Dislikes))
	if color, ok := profile.Traits.PreferredColor(); ok {
		fmt.Fprintf(out, " | Preferred color: %s", color)
	}
	fmt.Fprintln(out)
	return nil
}

func printRecommendation(out io.Writer, rec domain.Recommendation) {
	fmt.Fprintf(out, "%s:\n", rec.Hint)
	for _, s := range rec.Suggestions {
		fmt.Fprintf(out, "  - [%s] %s (%s, %.2f)\n", s.ID, s.Name, s.Color, s.Price)
	}
}

func printOutfit(out io.Writer, outfit domain.Outfit) {
	fmt.Fprintln(out, outfit.Explanation)
	for _, it := range outfit.Items {
		fmt.Fprintf(out, "  - [%s] %s | %s | %.2f\n", it.ID, it.Name, it.Category, it.Price)
	}
	fmt.Fprintf(out, "  Total: %.2f\n", outfit.TotalPrice)
}

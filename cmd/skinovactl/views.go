package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/skinovaai/skinova/pkg/apiclient"
	"github.com/skinovaai/skinova/pkg/routes"
	"github.com/skinovaai/skinova/pkg/session"
)

// textView is a static page that just prints its lines.
type textView struct {
	out   io.Writer
	title string
	lines []string
}

func (v *textView) Render(_ context.Context, _ routes.Resolved) error {
	printTitle(v.out, v.title)
	for _, l := range v.lines {
		fmt.Fprintln(v.out, l)
	}
	return nil
}

// fetchView fetches page data from the API and prints it.
type fetchView struct {
	out    io.Writer
	title  string
	render func(ctx context.Context, out io.Writer, route routes.Resolved) error
}

func (v *fetchView) Render(ctx context.Context, route routes.Resolved) error {
	printTitle(v.out, v.title)
	return v.render(ctx, v.out, route)
}

func printTitle(out io.Writer, title string) {
	fmt.Fprintf(out, "\n== %s ==\n", title)
}

func newViews(out io.Writer, client *apiclient.Client, sess *session.Manager) map[string]routes.View {
	fetch := func(title string, render func(context.Context, io.Writer, routes.Resolved) error) routes.View {
		return &fetchView{out: out, title: title, render: render}
	}

	return map[string]routes.View{
		"/login": &textView{out: out, title: "Log In",
			lines: []string{"Use: login <email> <password>"}},
		"/signup": &textView{out: out, title: "Sign Up",
			lines: []string{"Use: signup <name> <email> <password>"}},

		"/dashboard": fetch("Dashboard", func(ctx context.Context, out io.Writer, _ routes.Resolved) error {
			dash, err := client.Dashboard(ctx)
			if err != nil {
				return err
			}
			if id := sess.Identity(); id != nil {
				fmt.Fprintf(out, "Welcome back, %s (%s plan, %d points)\n", id.Name, id.Plan, id.ReferralPoints)
			}
			fmt.Fprintf(out, "Last analysis:    %s\n", orNA(dash.LastAnalysis))
			fmt.Fprintf(out, "Academy progress: %d%%\n", dash.AcademyProgress)
			fmt.Fprintf(out, "Upcoming consult: %s\n", orNA(dash.UpcomingConsult))
			fmt.Fprintln(out, "Trending posts:")
			for _, p := range dash.TrendingPosts {
				fmt.Fprintf(out, "  [%s] %s (%d upvotes) -> /forum/post/%s\n", p.Category, p.Title, p.Upvotes, p.ID)
			}
			return nil
		}),

		"/analyzer": fetch("Skin Analyzer", func(ctx context.Context, out io.Writer, _ routes.Resolved) error {
			history, err := client.AnalysisHistory(ctx)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(out, "No analyses yet. Use: analyze")
				return nil
			}
			for _, a := range history {
				fmt.Fprintf(out, "%s  %-7s score %3d  acne %d/5  wrinkles %d/5\n",
					a.Date, a.SkinType, a.Score, a.AcneLevel, a.WrinkleLevel)
			}
			return nil
		}),

		"/academy": fetch("Skin Academy", func(ctx context.Context, out io.Writer, _ routes.Resolved) error {
			lessons, err := client.Academy(ctx)
			if err != nil {
				return err
			}
			for _, l := range lessons {
				mark := " "
				if l.Completed {
					mark = "x"
				}
				fmt.Fprintf(out, "[%s] %-12s %s (%s) id=%s\n", mark, l.Category, l.Title, l.Duration, l.ID)
			}
			fmt.Fprintln(out, "Use: quiz <lessonId> <score>")
			return nil
		}),

		"/forum": fetch("Community Forum", func(ctx context.Context, out io.Writer, _ routes.Resolved) error {
			posts, err := client.ForumPosts(ctx)
			if err != nil {
				return err
			}
			for _, p := range posts {
				fmt.Fprintf(out, "[%s] %s by %s (%d replies, %d upvotes) -> /forum/post/%s\n",
					p.Category, p.Title, p.Author, p.Replies, p.Upvotes, p.ID)
			}
			return nil
		}),

		"/forum/post/:id": fetch("Forum Post", func(ctx context.Context, out io.Writer, route routes.Resolved) error {
			post, err := client.ForumPost(ctx, route.Param("id"))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\nby %s on %s [%s], %d upvotes\n\n%s\n",
				post.Title, post.Author, post.Date, post.Category, post.Upvotes, post.Content)
			for _, rep := range post.Replies {
				fmt.Fprintf(out, "  > %s (%s, %d upvotes): %s\n", rep.Author, rep.Date, rep.Upvotes, rep.Content)
			}
			return nil
		}),

		"/consult": fetch("Consult an Expert", func(ctx context.Context, out io.Writer, _ routes.Resolved) error {
			bookings, err := client.Bookings(ctx)
			if err != nil {
				return err
			}
			if len(bookings) == 0 {
				fmt.Fprintln(out, "No past bookings found.")
			}
			for _, b := range bookings {
				fmt.Fprintf(out, "%s at %s - %s (%s)\n", b.Date, b.Time, b.Type, b.Notes)
			}
			fmt.Fprintln(out, "Use: book <date> <time>")
			return nil
		}),

		"/pricing": fetch("Pricing", func(ctx context.Context, out io.Writer, _ routes.Resolved) error {
			fmt.Fprintln(out, "Free     $0       Forever")
			fmt.Fprintln(out, "Pro      $9.99/mo")
			fmt.Fprintln(out, "Premium  $29.99/mo")
			fmt.Fprintln(out, "Use: coupon <code>, checkout <plan> <price>")
			return nil
		}),

		"/referrals": fetch("Referral Rewards", func(ctx context.Context, out io.Writer, _ routes.Resolved) error {
			rewards, err := client.Rewards(ctx)
			if err != nil {
				return err
			}
			if id := sess.Identity(); id != nil {
				fmt.Fprintf(out, "You have %d points.\n", id.ReferralPoints)
			}
			for _, rw := range rewards {
				fmt.Fprintf(out, "%-25s %4d points  id=%s\n", rw.Name, rw.Points, rw.ID)
			}
			fmt.Fprintln(out, "Use: redeem <rewardId>")
			return nil
		}),

		"/diet": fetch("Diet & Health", func(ctx context.Context, out io.Writer, _ routes.Resolved) error {
			plan, err := client.DietPlan(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, strings.TrimSpace(plan.Summary))
			for _, fa := range plan.FocusAreas {
				fmt.Fprintf(out, "- %s: %s\n", fa.Title, fa.Foods)
			}
			return nil
		}),

		"/settings": fetch("Settings & Profile", func(ctx context.Context, out io.Writer, _ routes.Resolved) error {
			id := sess.Identity()
			if id == nil {
				return nil
			}
			fmt.Fprintf(out, "Name:  %s\nEmail: %s\nPlan:  %s\n", id.Name, id.Email, id.Plan)
			fmt.Fprintln(out, "Use: tip (for an AI skincare tip)")
			return nil
		}),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

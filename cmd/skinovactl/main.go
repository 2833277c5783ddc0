// Command skinovactl is a terminal client for the Skinova API. It drives the
// same route table, auth gating and session lifecycle as the web client:
// pages live behind paths, protected paths redirect to /login while logged
// out, and the stored credential is re-verified on startup.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/skinovaai/skinova/pkg/api"
	"github.com/skinovaai/skinova/pkg/apiclient"
	"github.com/skinovaai/skinova/pkg/gate"
	"github.com/skinovaai/skinova/pkg/logger"
	"github.com/skinovaai/skinova/pkg/nav"
	"github.com/skinovaai/skinova/pkg/routes"
	"github.com/skinovaai/skinova/pkg/session"
)

// managerSource adapts the session manager to the API client's token source.
// It exists because the client and the manager reference each other: the
// client is constructed first, the manager is attached right after.
type managerSource struct {
	mgr *session.Manager
}

func (s *managerSource) Token() string {
	if s.mgr == nil {
		return ""
	}
	return s.mgr.Token()
}

func (s *managerSource) Invalidate() {
	if s.mgr != nil {
		s.mgr.Invalidate()
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "skinovactl:", err)
		os.Exit(1)
	}
}

func run() error {
	apiBase := flag.String("api", "http://localhost:8080/api", "Skinova API base URL")
	credFile := flag.String("credential", defaultCredentialPath(), "path of the persisted session token")
	verbose := flag.Bool("verbose", false, "log session and navigation events")
	flag.Parse()

	log := logger.Discard()
	if *verbose {
		log = logger.New("skinovactl")
	}

	src := &managerSource{}
	client := apiclient.New(*apiBase, src, apiclient.WithTimeout(10*time.Second))
	sess := session.NewManager(client, session.NewFileStore(*credFile), session.WithLogger(log))
	src.mgr = sess

	ctx := context.Background()
	if err := sess.Init(ctx); err != nil {
		return err
	}

	out := os.Stdout
	views := newViews(out, client, sess)

	set := routes.NewSet(
		routes.Descriptor{Pattern: "/login", View: views["/login"]},
		routes.Descriptor{Pattern: "/signup", View: views["/signup"]},
		routes.Descriptor{Pattern: "/dashboard", View: views["/dashboard"], RequiresAuth: true},
		routes.Descriptor{Pattern: "/analyzer", View: views["/analyzer"], RequiresAuth: true},
		routes.Descriptor{Pattern: "/academy", View: views["/academy"], RequiresAuth: true},
		routes.Descriptor{Pattern: "/forum", View: views["/forum"], RequiresAuth: true},
		routes.Descriptor{Pattern: "/forum/post/:id", View: views["/forum/post/:id"], RequiresAuth: true},
		routes.Descriptor{Pattern: "/consult", View: views["/consult"], RequiresAuth: true},
		routes.Descriptor{Pattern: "/pricing", View: views["/pricing"], RequiresAuth: true},
		routes.Descriptor{Pattern: "/referrals", View: views["/referrals"], RequiresAuth: true},
		routes.Descriptor{Pattern: "/diet", View: views["/diet"], RequiresAuth: true},
		routes.Descriptor{Pattern: "/settings", View: views["/settings"], RequiresAuth: true},
	)

	navigator := nav.New(set, gate.DefaultPolicy(), sess, nav.WithLogger(log))
	navigator.Subscribe(func(path string, route routes.Resolved) {
		if !route.Matched() {
			fmt.Fprintf(out, "\nNo page at %s\n", path)
			return
		}
		if err := route.Descriptor.View.Render(ctx, route); err != nil {
			fmt.Fprintf(out, "error: %s\n", displayError(err))
		}
	})
	navigator.Start()

	return repl(ctx, out, bufio.NewScanner(os.Stdin), client, sess, navigator)
}

func repl(ctx context.Context, out *os.File, in *bufio.Scanner, client *apiclient.Client, sess *session.Manager, navigator *nav.Navigator) error {
	fmt.Fprintln(out, "\nCommands: go <path>, back, forward, login, signup, logout, analyze, quiz, book, coupon, checkout, redeem, tip, quit")

	for {
		fmt.Fprintf(out, "\n%s> ", navigator.Location())
		if !in.Scan() {
			return in.Err()
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return nil
		case "go":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: go <path>")
				continue
			}
			navigator.Navigate(args[0])
		case "back":
			navigator.Back()
		case "forward":
			navigator.Forward()
		case "login":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: login <email> <password>")
				continue
			}
			if err := sess.Login(ctx, args[0], args[1]); err != nil {
				fmt.Fprintln(out, "login failed:", displayError(err))
				continue
			}
			navigator.Navigate("/dashboard")
		case "signup":
			if len(args) != 3 {
				fmt.Fprintln(out, "usage: signup <name> <email> <password>")
				continue
			}
			if err := sess.Signup(ctx, args[0], args[1], args[2]); err != nil {
				fmt.Fprintln(out, "signup failed:", displayError(err))
				continue
			}
			fmt.Fprintln(out, "Account created. Log in to continue.")
			navigator.Navigate("/login")
		case "logout":
			sess.Logout(ctx)
			navigator.Navigate("/login")
		case "analyze":
			runAnalysis(ctx, out, client, navigator)
		case "quiz":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: quiz <lessonId> <score>")
				continue
			}
			score, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintln(out, "score must be a number")
				continue
			}
			if err := client.SubmitQuiz(ctx, args[0], score); err != nil {
				fmt.Fprintln(out, "quiz failed:", displayError(err))
				continue
			}
			fmt.Fprintln(out, "Quiz recorded.")
		case "book":
			if len(args) < 2 {
				fmt.Fprintln(out, "usage: book <date> <time>")
				continue
			}
			err := client.BookConsult(ctx, api.BookingRequest{Date: args[0], Time: args[1], Type: "Video Call"})
			if err != nil {
				fmt.Fprintln(out, "booking failed:", displayError(err))
				continue
			}
			fmt.Fprintln(out, "Consultation booked successfully!")
		case "coupon":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: coupon <code>")
				continue
			}
			discount, err := client.ApplyCoupon(ctx, args[0])
			if err != nil {
				fmt.Fprintln(out, displayError(err))
				continue
			}
			fmt.Fprintf(out, "Coupon applied: %d%% off.\n", discount)
		case "checkout":
			if len(args) < 2 {
				fmt.Fprintln(out, "usage: checkout <plan> <price> [coupon]")
				continue
			}
			req := api.CheckoutRequest{Plan: args[0], Price: args[1]}
			if len(args) > 2 {
				req.Coupon = args[2]
			}
			if err := client.Checkout(ctx, req); err != nil {
				fmt.Fprintln(out, "payment failed:", displayError(err))
				continue
			}
			fmt.Fprintf(out, "Mock payment successful! You are now on the %s plan.\n", req.Plan)
		case "redeem":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: redeem <rewardId>")
				continue
			}
			if err := client.RedeemReward(ctx, args[0]); err != nil {
				fmt.Fprintln(out, "redeem failed:", displayError(err))
				continue
			}
			fmt.Fprintln(out, "Reward redeemed!")
		case "tip":
			tip, err := client.VoiceTip(ctx)
			if err != nil {
				fmt.Fprintln(out, displayError(err))
				continue
			}
			fmt.Fprintln(out, "AI Tip:", tip)
		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd)
		}
	}
}

// runAnalysis submits a mock analysis the way the web client fakes one.
func runAnalysis(ctx context.Context, out *os.File, client *apiclient.Client, navigator *nav.Navigator) {
	created, err := client.SubmitAnalysis(ctx, api.AnalysisRequest{
		SkinType:     []string{"Oily", "Dry", "Normal"}[time.Now().UnixNano()%3],
		AcneLevel:    int(time.Now().UnixNano()%5) + 1,
		WrinkleLevel: int(time.Now().UnixNano()/7%5) + 1,
		Score:        int(time.Now().UnixNano() % 100),
		Recommendations: []api.Recommendation{
			{Product: "Gentle Cleanser", Purpose: "Daily wash"},
			{Product: "Hydrating Serum", Purpose: "Barrier repair"},
		},
	})
	if err != nil {
		fmt.Fprintln(out, "analysis failed:", displayError(err))
		return
	}
	fmt.Fprintf(out, "New analysis recorded: %s skin, score %d.\n", created.SkinType, created.Score)
	navigator.Navigate("/analyzer")
}

// displayError prefers the server's message over Go error chains.
func displayError(err error) string {
	var se *apiclient.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	var ae *session.AuthError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return err.Error()
}

func defaultCredentialPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "skinova", "credential")
}

// Package tutor dispatches chat input: slash commands go to the local
// solvers, anything else is forwarded to the hosted tutor model. Every
// failure comes back as a typed error for the front end to render; the
// process never dies on a bad command.
package tutor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/san-kum/phystutor/internal/config"
	"github.com/san-kum/phystutor/internal/kinematics"
	"github.com/san-kum/phystutor/internal/llm"
	"github.com/san-kum/phystutor/internal/phys"
	"github.com/san-kum/phystutor/internal/plot"
	"github.com/san-kum/phystutor/internal/profile"
	"github.com/san-kum/phystutor/internal/units"
)

const defaultPrompt = `You are a patient physics and math tutor. Guide the
student step by step. Prefer hints over final answers unless the mode
allows them. Keep answers short and concrete.`

// Reply is what a dispatched command produces: a report to display, an
// optional terminal preview of the rendered plot, and any plot artifacts
// the caller may want to open.
type Reply struct {
	Text      string
	Preview   string
	Artifacts []plot.Artifact
}

type Tutor struct {
	cfg      *config.Config
	reg      *units.Registry
	kin      *kinematics.Solver
	client   *llm.Client
	profiles *profile.Store
	userID   string
	mode     string
}

// New wires a tutor from configuration. The unit registry is built once
// here and shared by reference with every solver.
func New(cfg *config.Config) *Tutor {
	reg := units.NewRegistry()
	return &Tutor{
		cfg:      cfg,
		reg:      reg,
		kin:      kinematics.NewSolver(reg),
		client:   llm.New(cfg),
		profiles: profile.NewStore(cfg.DataDir),
		userID:   "default",
		mode:     "tutor",
	}
}

// SetUser switches the active student profile.
func (t *Tutor) SetUser(userID string) {
	if userID != "" {
		t.userID = userID
	}
}

// Dispatch resolves one line of chat input. Slash commands are handled
// synchronously by the solvers; free text goes to the LLM (the only
// network call, bounded by ctx).
func (t *Tutor) Dispatch(ctx context.Context, input string) (Reply, error) {
	input = strings.TrimSpace(input)

	switch {
	case strings.HasPrefix(input, "/units "):
		return t.cmdUnits(strings.TrimPrefix(input, "/units "))
	case strings.HasPrefix(input, "/kin "):
		return t.cmdKin(strings.TrimPrefix(input, "/kin "))
	case strings.HasPrefix(input, "/plot_motion "):
		return t.cmdPlotMotion(strings.TrimPrefix(input, "/plot_motion "))
	case strings.HasPrefix(input, "/dyn "):
		return t.cmdDyn(strings.TrimPrefix(input, "/dyn "))
	case strings.HasPrefix(input, "/projectile "):
		return t.cmdProjectile(strings.TrimPrefix(input, "/projectile "))
	case strings.HasPrefix(input, "/fbd "):
		return t.cmdFbd(strings.TrimPrefix(input, "/fbd "))
	case input == "/hint":
		t.mode = "tutor_hint_only"
		return Reply{Text: "OK, hint-only mode."}, nil
	case input == "/answer":
		t.mode = "tutor_final_allowed"
		return Reply{Text: "OK, I can give the final answer now."}, nil
	case input == "/profile":
		return t.cmdProfile()
	case input == "/reset":
		if err := t.profiles.Reset(t.userID); err != nil {
			return Reply{}, err
		}
		return Reply{Text: "Profile reset."}, nil
	case input == "/help" || strings.HasPrefix(input, "/"):
		return Reply{Text: helpText}, nil
	case input == "":
		return Reply{Text: helpText}, nil
	}

	return t.ask(ctx, input)
}

const helpText = `Commands:
  /units 72 km/h to m/s
  /kin v0=0 m/s, a=2 m/s^2, t=5 s
  /plot_motion v0=0 m/s, a=2 m/s^2, t=5 s, x0=0 m
  /dyn 1d m=2 kg, F=10 N, mu=0.2, N=19.62 N
  /dyn incline m=2 kg, theta=30 deg, mu=0.10
  /projectile v0=20 m/s, theta=30 deg, y0=0 m
  /fbd atwood m1 | /fbd incline | /fbd 1d
  /hint /answer /profile /reset
Anything else is sent to the tutor.`

// ask forwards free text to the hosted model, wrapped with the student's
// profile, then folds the exchange back into the profile and session log.
func (t *Tutor) ask(ctx context.Context, msg string) (Reply, error) {
	prof, err := t.profiles.Load(t.userID)
	if err != nil {
		return Reply{}, err
	}

	answer, err := t.client.Chat(ctx, t.systemPrompt(), buildWrapper(prof, t.mode, msg))
	if err != nil {
		return Reply{}, err
	}

	prof.Update(msg, answer)
	if err := t.profiles.Save(prof); err != nil {
		return Reply{}, err
	}
	if err := t.profiles.LogTurn(t.userID, t.mode, msg, answer); err != nil {
		return Reply{}, err
	}

	return Reply{Text: answer}, nil
}

func (t *Tutor) systemPrompt() string {
	data, err := os.ReadFile(t.cfg.PromptPath)
	if err != nil {
		return defaultPrompt
	}
	return string(data)
}

func buildWrapper(prof *profile.Profile, mode, msg string) string {
	snapshot := fmt.Sprintf("user: %s, mastery: %v, stuck: %d",
		prof.UserID, prof.Mastery, prof.StuckCount)
	return fmt.Sprintf("STUDENT_PROFILE:\n%s\n\nMODE: %s\n\nSTUDENT_MESSAGE:\n%s",
		snapshot, mode, msg)
}

func (t *Tutor) cmdProfile() (Reply, error) {
	prof, err := t.profiles.Load(t.userID)
	if err != nil {
		return Reply{}, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "user: %s\n", prof.UserID)
	fmt.Fprintf(&b, "turns recorded: %d\n", len(prof.History))
	fmt.Fprintf(&b, "stuck streak: %d\n", prof.StuckCount)
	if len(prof.Mastery) > 0 {
		b.WriteString("mastery:\n")
		for topic, n := range prof.Mastery {
			fmt.Fprintf(&b, "  %s: %d\n", topic, n)
		}
	}
	return Reply{Text: strings.TrimRight(b.String(), "\n")}, nil
}

// artifactPath keys each plot file by a short per-invocation id so
// concurrent sessions never race on the same destination.
func (t *Tutor) artifactPath(kind string) string {
	return filepath.Join(t.cfg.PlotsDir, fmt.Sprintf("%s_%s.svg", kind, uuid.NewString()[:8]))
}

// si pulls a named quantity converted to the given SI unit, or nil when
// absent. An unconvertible unit degrades to the raw value, matching the
// lenient interactive behavior of the solvers.
func (t *Tutor) si(args phys.QuantitySet, name, unit string) *float64 {
	q, ok := args.Get(name)
	if !ok {
		return nil
	}
	v, err := t.reg.Convert(q.Value, q.Unit, unit)
	if err != nil {
		v = q.Value
	}
	return &v
}

// fmtVal renders a value at the fixed display precision (6 significant
// figures), never full float precision.
func fmtVal(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

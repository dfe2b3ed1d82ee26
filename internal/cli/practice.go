package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"interview-practice/internal/domain"
	"interview-practice/internal/interview"
	"interview-practice/internal/interviewer"
	"interview-practice/internal/navigator"
	"interview-practice/internal/observability"
	"interview-practice/internal/questions"
	"interview-practice/internal/scoring"
	"interview-practice/internal/storage"
	"interview-practice/internal/ui"
)

var (
	practiceRole   string
	practiceDomain string
	practiceMode   string
	practiceOnce   bool
)

func init() {
	rootCmd.AddCommand(practiceCmd)

	practiceCmd.Flags().StringVar(&practiceRole, "role", "", "role id (see 'interview roles'); picker when empty")
	practiceCmd.Flags().StringVar(&practiceDomain, "domain", "", "domain within the role; picker when empty")
	practiceCmd.Flags().StringVar(&practiceMode, "mode", "", "technical or behavioral; picker when empty")
	practiceCmd.Flags().BoolVar(&practiceOnce, "once", false, "exit after the summary instead of offering a new interview")
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run an interactive mock interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		m := deps.metrics
		engine := interview.NewEngine(deps.bank, scoring.New(scoring.RandomChooser), interview.Options{
			FeedbackDelay: deps.env.ResolveFeedbackDelay(deps.cfg),
			Observer:      m,
			OnComplete: func(interview.Outcome) {
				observability.Logger().Info("метрики процесса", m.GetSnapshot().LogAttrs()...)
			},
		})

		p := &practice{
			nav:  navigator.New(engine),
			svc:  interviewer.New(os.Stdin, os.Stdout),
			role: practiceRole,
			dom:  practiceDomain,
			mode: practiceMode,
		}
		return p.run(ctx)
	},
}

// practice ведет одну CLI-сессию по экранам навигатора
type practice struct {
	nav *navigator.Navigator
	svc *interviewer.Service

	// значения флагов используются только для первого прохода
	role, dom, mode string
}

func (p *practice) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			p.nav.NewInterview()
			return nil
		}

		switch p.nav.Screen() {
		case navigator.ScreenRoleSelection:
			role, dom, err := p.pickRole()
			if errors.Is(err, ui.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
			if err := p.nav.SelectRole(role, dom); err != nil {
				return err
			}

		case navigator.ScreenModeSelection:
			mode, err := p.pickMode()
			if errors.Is(err, ui.ErrCancelled) {
				if err := p.nav.Back(); err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			if _, err := p.nav.SelectMode(ctx, mode); err != nil {
				return err
			}
			role, dom, _ := p.nav.Selection()
			label := questions.RoleTitle(role)
			if dom != "" {
				label += " · " + dom
			}
			fmt.Printf("\n🎯 %s · %s\n", label, mode.Title())

		case navigator.ScreenInterview:
			session := p.nav.Session()
			exit, err := p.svc.Conduct(ctx, session)
			if err != nil {
				return err
			}
			switch exit {
			case interviewer.ExitBack:
				if err := p.nav.Back(); err != nil {
					return err
				}
			case interviewer.ExitQuit:
				return nil
			case interviewer.ExitCompleted:
				res, err := p.nav.Complete()
				if err != nil {
					return err
				}
				persist(ctx, res, session.Timeline())
			}

		case navigator.ScreenSummary:
			res, _ := p.nav.Result()
			fmt.Println()
			fmt.Println(ui.RenderSummary(res))
			if practiceOnce || !p.svc.Confirm(ctx, "🔁 Start a new interview?") {
				return nil
			}
			p.nav.NewInterview()
		}
	}
}

func (p *practice) pickRole() (string, string, error) {
	if p.role != "" {
		role, dom := p.role, p.dom
		p.role, p.dom = "", ""
		return role, dom, nil
	}

	for {
		role, err := ui.SelectRole(questions.Roles())
		if err != nil {
			return "", "", err
		}
		dom, err := ui.SelectDomain(role)
		if errors.Is(err, ui.ErrCancelled) {
			continue
		}
		if err != nil {
			return "", "", err
		}
		return role.ID, dom, nil
	}
}

func (p *practice) pickMode() (domain.Mode, error) {
	if p.mode != "" {
		raw := p.mode
		p.mode = ""
		return domain.ParseMode(raw)
	}
	return ui.SelectMode(questions.Modes())
}

// persist сохраняет результат в JSON файл и историю; ошибки не прерывают работу
func persist(ctx context.Context, res domain.SessionResult, timeline []domain.TimelineEntry) {
	ctx = context.WithoutCancel(ctx)
	record := storage.NewInterviewResult(res, timeline)
	logger := observability.WithFields(
		"session_id", res.SessionID,
		"role", res.Role,
		"mode", string(res.Mode),
	)

	path, err := deps.files.SaveResult(record)
	if err != nil {
		logger.Error("ошибка сохранения результата", "error", err)
		fmt.Fprintf(os.Stderr, "⚠️ Could not save result: %v\n", err)
	} else {
		logger.Info("результат сохранен", "path", path, "final_score", res.FinalScore)
		fmt.Printf("💾 Result saved to %s\n", path)
	}

	h, err := deps.openHistory()
	if err != nil {
		logger.Error("ошибка открытия истории", "error", err)
		fmt.Fprintf(os.Stderr, "⚠️ History unavailable: %v\n", err)
		return
	}
	if h == nil {
		return
	}
	defer h.Close()

	if err := h.Save(ctx, record); err != nil {
		logger.Error("ошибка записи истории", "error", err)
		fmt.Fprintf(os.Stderr, "⚠️ Could not update history: %v\n", err)
		return
	}
	logger.Debug("результат записан в историю")
}

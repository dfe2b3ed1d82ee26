package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"interview-practice/internal/config"
	"interview-practice/internal/metrics"
	"interview-practice/internal/observability"
	"interview-practice/internal/questions"
	"interview-practice/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "interview",
	Short: "Mock interview practice in your terminal",
	Long: `interview runs mock interview sessions for a chosen role, domain and mode.
Each answer gets an instant heuristic score and feedback; at the end you get
a summary with strengths, improvements and resources, saved to local history.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return deps.load()
	},
}

// app собирает зависимости, общие для всех команд
type app struct {
	env     *config.AppConfig
	cfg     *config.Config
	bank    *questions.Bank
	files   *storage.Files
	metrics *metrics.Metrics
}

var deps app

func (a *app) load() error {
	a.env = config.LoadAppConfig()
	observability.Setup(os.Stderr, a.env.Log.Level, a.env.Log.Format)

	cfg, err := config.Load(a.env.ConfigFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации интервью: %w", err)
	}
	a.cfg = cfg

	a.bank = questions.Default()
	if file := cfg.GetQuestionBankFile(); file != "" {
		bank, err := questions.LoadFile(file)
		if err != nil {
			return fmt.Errorf("ошибка загрузки банка вопросов: %w", err)
		}
		a.bank = bank
		observability.Logger().Info("загружен банк вопросов", "file", file)
	}

	a.files = storage.NewFiles(a.env.ResultsDir)
	a.metrics = metrics.NewMetrics()
	return nil
}

// openHistory открывает SQLite историю; nil без ошибки, если история отключена
func (a *app) openHistory() (*storage.History, error) {
	if !a.env.HistoryEnabled(a.cfg) {
		return nil, nil
	}
	return storage.OpenHistory(a.env.HistoryDB)
}

// loadResult ищет результат сначала в истории, затем в JSON файлах
func (a *app) loadResult(ctx context.Context, id string) (*storage.InterviewResult, error) {
	h, err := a.openHistory()
	if err != nil {
		return nil, err
	}
	if h != nil {
		defer h.Close()
		result, err := h.Get(ctx, id)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}
	return a.files.LoadResult(id)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	resultPrefix = "interview_"
	resultExt    = ".json"
)

// ErrNotFound - результат с таким ID не найден
var ErrNotFound = errors.New("результат не найден")

// Files хранит результаты интервью в JSON файлах каталога
type Files struct {
	dir string
}

func NewFiles(dir string) *Files {
	return &Files{dir: dir}
}

// Dir возвращает каталог результатов
func (f *Files) Dir() string {
	return f.dir
}

// SaveResult сохраняет результат интервью в JSON файл и возвращает путь к нему
func (f *Files) SaveResult(result *InterviewResult) (string, error) {
	if result.InterviewID == "" {
		return "", fmt.Errorf("результат без interview_id")
	}

	// Создаем директорию если её нет
	err := os.MkdirAll(f.dir, 0755)
	if err != nil {
		return "", fmt.Errorf("ошибка создания директории %s: %w", f.dir, err)
	}

	path := f.path(result.InterviewID)

	// Сериализуем результат в JSON с отступами
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации результата: %w", err)
	}

	err = os.WriteFile(path, jsonData, 0644)
	if err != nil {
		return "", fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}

	return path, nil
}

// LoadResult загружает результат интервью из JSON файла
func (f *Files) LoadResult(interviewID string) (*InterviewResult, error) {
	path := f.path(interviewID)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", interviewID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", path, err)
	}

	var result InterviewResult
	err = json.Unmarshal(data, &result)
	if err != nil {
		return nil, fmt.Errorf("ошибка десериализации JSON: %w", err)
	}

	return &result, nil
}

// ListResults возвращает отсортированный список ID сохраненных интервью
func (f *Files) ListResults() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения директории %s: %w", f.dir, err)
	}

	results := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != resultExt || !strings.HasPrefix(name, resultPrefix) {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(name, resultPrefix), resultExt)
		if id != "" {
			results = append(results, id)
		}
	}
	sort.Strings(results)

	return results, nil
}

func (f *Files) path(interviewID string) string {
	return filepath.Join(f.dir, resultPrefix+filepath.Base(interviewID)+resultExt)
}

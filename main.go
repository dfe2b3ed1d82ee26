package main

import (
	"github.com/joho/godotenv"

	"interview-practice/internal/cli"
	"interview-practice/internal/observability"
)

func main() {
	// Загружаем переменные окружения; без .env работаем на значениях по умолчанию
	if err := godotenv.Load(); err != nil {
		observability.Logger().Debug("файл .env не найден", "error", err)
	}

	cli.Execute()
}

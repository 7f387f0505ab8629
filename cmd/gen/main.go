package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Regenerates internal/infra/persistence/postgres/query from the account models.
// Run from the repository root: go run ./cmd/gen
func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(models...)

	g.Execute()
}

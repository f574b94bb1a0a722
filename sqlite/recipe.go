package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mise"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ mise.RecipeService = (*RecipeService)(nil)

// RecipeService implements mise.RecipeService using SQLite.
type RecipeService struct {
	db *DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db}
}

const recipeColumns = "id, title, ingredients, instructions, cooking_time, servings, source_url, content_hash, created_at"

// hashRecipe computes the xxHash of the recipe's extracted text as hex.
func hashRecipe(r *mise.Recipe) string {
	d := xxhash.New()
	for _, field := range []string{r.Title, r.Ingredients, r.Instructions, r.CookingTime, r.Servings} {
		_, _ = d.WriteString(field)
		_, _ = d.Write([]byte{0})
	}
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, d.Sum64()))
}

// CreateRecipe stores a recipe, assigning its ID, content hash and creation time.
// Re-saving unchanged content from the same source URL reuses the stored row.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *mise.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	hash := hashRecipe(recipe)
	existing, err := s.FindRecipes(ctx, mise.RecipeFilter{
		SourceURL:   &recipe.SourceURL,
		ContentHash: &hash,
		Limit:       1,
	})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		recipe.ID = existing[0].ID
		recipe.ContentHash = hash
		recipe.CreatedAt = existing[0].CreatedAt
		return nil
	}

	recipe.ID = uuid.New().String()
	recipe.ContentHash = hash
	recipe.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recipes (`+recipeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, recipe.ID, recipe.Title, recipe.Ingredients, recipe.Instructions, recipe.CookingTime,
		recipe.Servings, recipe.SourceURL, recipe.ContentHash, recipe.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRecipeByID retrieves a recipe by ID.
func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*mise.Recipe, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recipeColumns+" FROM recipes WHERE id = ?", id)

	recipe, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mise.Errorf(mise.ENOTFOUND, "recipe not found")
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// FindRecipes retrieves recipes matching the filter, newest first.
// The title filter matches case-insensitively anywhere in the title.
func (s *RecipeService) FindRecipes(ctx context.Context, filter mise.RecipeFilter) ([]*mise.Recipe, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recipeColumns + " FROM recipes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}
	if filter.Title != nil {
		query.WriteString(" AND title LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(*filter.Title)+"%")
	}

	// rowid breaks ties between recipes created within the same second.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*mise.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}

	return recipes, rows.Err()
}

// DeleteRecipe permanently removes a recipe.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return mise.Errorf(mise.ENOTFOUND, "recipe not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row scanner) (*mise.Recipe, error) {
	var recipe mise.Recipe
	var createdAt string

	if err := row.Scan(&recipe.ID, &recipe.Title, &recipe.Ingredients, &recipe.Instructions,
		&recipe.CookingTime, &recipe.Servings, &recipe.SourceURL, &recipe.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	recipe.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

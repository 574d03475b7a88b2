package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/faresFatooh/media-platform/internal/model"
)

type ArticleRepository struct {
	db *sqlx.DB
}

func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) CreateArticle(ctx context.Context, article *model.NewsArticle) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO news_article(owner_id, source_url, original_text, topic)
		VALUES($1, $2, $3, $4)
		RETURNING id, created_at
	`, article.OwnerID, article.SourceURL, article.OriginalText, article.Topic).
		Scan(&article.ID, &article.CreatedAt)
}

// CreateArticleWithPosts inserts the article and its generated posts in one
// transaction, so a mid-sequence failure never leaves an article behind
// without the batch that produced it.
func (r *ArticleRepository) CreateArticleWithPosts(ctx context.Context, article *model.NewsArticle, posts []model.GeneratedPost) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO news_article(owner_id, source_url, original_text, topic)
		VALUES($1, $2, $3, $4)
		RETURNING id, created_at
	`, article.OwnerID, article.SourceURL, article.OriginalText, article.Topic).
		Scan(&article.ID, &article.CreatedAt)
	if err != nil {
		return err
	}

	if len(posts) > 0 {
		platforms := make([]string, len(posts))
		contents := make([]string, len(posts))
		for i, p := range posts {
			platforms[i] = p.Platform
			contents[i] = p.Content
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO generated_post(article_id, platform, content, status)
			SELECT $1, unnest($2::text[]), unnest($3::text[]), $4
		`, article.ID, pq.Array(platforms), pq.Array(contents), model.PostStatusDraft)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *ArticleRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.NewsArticle, error) {
	var articles []model.NewsArticle
	err := r.db.SelectContext(ctx, &articles, `
		SELECT id, owner_id, source_url, original_text, topic, created_at
		FROM news_article
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *ArticleRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM news_article WHERE owner_id = $1
	`, ownerID)
	return total, err
}

func (r *ArticleRepository) GetByID(ctx context.Context, ownerID, id int64) (*model.NewsArticle, error) {
	var article model.NewsArticle
	err := r.db.GetContext(ctx, &article, `
		SELECT id, owner_id, source_url, original_text, topic, created_at
		FROM news_article
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &article, nil
}

func (r *ArticleRepository) DeleteByID(ctx context.Context, ownerID, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM news_article WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *ArticleRepository) ListPostsByArticle(ctx context.Context, ownerID, articleID int64) ([]model.GeneratedPost, error) {
	var posts []model.GeneratedPost
	err := r.db.SelectContext(ctx, &posts, `
		SELECT p.id, p.article_id, p.platform, p.content, p.status, p.created_at
		FROM generated_post p
		JOIN news_article a ON a.id = p.article_id
		WHERE p.article_id = $1 AND a.owner_id = $2
		ORDER BY p.id
	`, articleID, ownerID)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *ArticleRepository) ListPostsByArticleIDs(ctx context.Context, ownerID int64, ids []int64) (map[int64][]model.GeneratedPost, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT p.id, p.article_id, p.platform, p.content, p.status, p.created_at
		FROM generated_post p
		JOIN news_article a ON a.id = p.article_id
		WHERE p.article_id = ANY($1) AND a.owner_id = $2
		ORDER BY p.id
	`, pq.Array(ids), ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]model.GeneratedPost)
	for rows.Next() {
		var p model.GeneratedPost
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		result[p.ArticleID] = append(result[p.ArticleID], p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

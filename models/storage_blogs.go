package models

import (
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

func (db *Database) CreateBlog(blog *Blog) (*Blog, error) {
	if blog.PublicId == "" {
		blog.PublicId = NewPublicId()
	}
	if blog.PublishedAt.IsZero() {
		blog.PublishedAt = time.Now()
	}
	result := db.GormDB.Create(blog)
	if result.Error != nil {
		slog.Error("failed to create blog", "authorEmail", blog.AuthorEmail, "error", result.Error)
		return nil, result.Error
	}
	slog.Info("blog created", "blogId", blog.PublicId, "authorEmail", blog.AuthorEmail)
	return blog, nil
}

func (db *Database) GetBlog(publicId string) (*Blog, error) {
	blog := &Blog{}
	result := db.GormDB.Take(blog, "public_id = ?", publicId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching blog", "blogId", publicId, "error", result.Error)
		return nil, result.Error
	}
	return blog, nil
}

func (db *Database) ListBlogs() ([]Blog, error) {
	var blogs []Blog
	if err := db.GormDB.Order("published_at desc").Find(&blogs).Error; err != nil {
		slog.Error("error listing blogs", "error", err)
		return nil, err
	}
	return blogs, nil
}

func (db *Database) GetBlogsByAuthor(authorEmail string) ([]Blog, error) {
	var blogs []Blog
	err := db.GormDB.Where("author_email = ?", authorEmail).
		Order("published_at desc").Find(&blogs).Error
	if err != nil {
		slog.Error("error fetching blogs by author", "authorEmail", authorEmail, "error", err)
		return nil, err
	}
	return blogs, nil
}

func (db *Database) UpdateBlog(publicId string, title string, content string) (*Blog, error) {
	blog, err := db.GetBlog(publicId)
	if err != nil || blog == nil {
		return nil, err
	}
	blog.Title = title
	blog.Content = content
	if err := db.GormDB.Save(blog).Error; err != nil {
		slog.Error("failed to update blog", "blogId", publicId, "error", err)
		return nil, err
	}
	slog.Info("blog updated", "blogId", publicId)
	return blog, nil
}

func (db *Database) DeleteBlog(publicId string) (bool, error) {
	result := db.GormDB.Where("public_id = ?", publicId).Delete(&Blog{})
	if result.Error != nil {
		slog.Error("failed to delete blog", "blogId", publicId, "error", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (db *Database) IncrementBlogVisits(publicId string) error {
	err := db.GormDB.Model(&Blog{}).Where("public_id = ?", publicId).
		UpdateColumn("total_visits", gorm.Expr("total_visits + ?", 1)).Error
	if err != nil {
		slog.Error("failed to increment blog visits", "blogId", publicId, "error", err)
	}
	return err
}

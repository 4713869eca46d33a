package database

import (
	"basecase_backend/internal/config"
	"basecase_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.Port,
		cfg.SSLMode,
		cfg.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Sheet{},
		&model.Problem{},
		&model.UserProblem{},
		&model.MentorExchange{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaultSheet(db)

	return db, nil
}

// seedDefaultSheet inserts a starter sheet when the catalog is empty so a
// fresh install has something to browse.
func seedDefaultSheet(db *gorm.DB) {
	var count int64
	db.Model(&model.Sheet{}).Count(&count)
	if count != 0 {
		return
	}

	sheet := &model.Sheet{
		Slug:        "blind-75",
		Name:        "Blind 75",
		Description: "The classic curated list of 75 interview problems.",
	}
	if err := db.Create(sheet).Error; err != nil {
		log.Printf("seed sheet failed: %v", err)
		return
	}

	defaultProblems := []model.Problem{
		{Slug: "two-sum", Title: "Two Sum", Difficulty: model.Easy, Pattern: "Arrays & Hashing", URL: "https://leetcode.com/problems/two-sum", Order: 1},
		{Slug: "valid-anagram", Title: "Valid Anagram", Difficulty: model.Easy, Pattern: "Arrays & Hashing", URL: "https://leetcode.com/problems/valid-anagram", Order: 2},
		{Slug: "contains-duplicate", Title: "Contains Duplicate", Difficulty: model.Easy, Pattern: "Arrays & Hashing", URL: "https://leetcode.com/problems/contains-duplicate", Order: 3},
		{Slug: "valid-palindrome", Title: "Valid Palindrome", Difficulty: model.Easy, Pattern: "Two Pointers", URL: "https://leetcode.com/problems/valid-palindrome", Order: 4},
		{Slug: "three-sum", Title: "3Sum", Difficulty: model.Medium, Pattern: "Two Pointers", URL: "https://leetcode.com/problems/3sum", Order: 5},
		{Slug: "longest-substring-without-repeating-characters", Title: "Longest Substring Without Repeating Characters", Difficulty: model.Medium, Pattern: "Sliding Window", URL: "https://leetcode.com/problems/longest-substring-without-repeating-characters", Order: 6},
		{Slug: "valid-parentheses", Title: "Valid Parentheses", Difficulty: model.Easy, Pattern: "Stack", URL: "https://leetcode.com/problems/valid-parentheses", Order: 7},
		{Slug: "binary-search", Title: "Binary Search", Difficulty: model.Easy, Pattern: "Binary Search", URL: "https://leetcode.com/problems/binary-search", Order: 8},
		{Slug: "reverse-linked-list", Title: "Reverse Linked List", Difficulty: model.Easy, Pattern: "Linked List", URL: "https://leetcode.com/problems/reverse-linked-list", Order: 9},
		{Slug: "merge-two-sorted-lists", Title: "Merge Two Sorted Lists", Difficulty: model.Easy, Pattern: "Linked List", URL: "https://leetcode.com/problems/merge-two-sorted-lists", Order: 10},
		{Slug: "invert-binary-tree", Title: "Invert Binary Tree", Difficulty: model.Easy, Pattern: "Trees", URL: "https://leetcode.com/problems/invert-binary-tree", Order: 11},
		{Slug: "maximum-depth-of-binary-tree", Title: "Maximum Depth of Binary Tree", Difficulty: model.Easy, Pattern: "Trees", URL: "https://leetcode.com/problems/maximum-depth-of-binary-tree", Order: 12},
		{Slug: "climbing-stairs", Title: "Climbing Stairs", Difficulty: model.Easy, Pattern: "Dynamic Programming", URL: "https://leetcode.com/problems/climbing-stairs", Order: 13},
		{Slug: "coin-change", Title: "Coin Change", Difficulty: model.Medium, Pattern: "Dynamic Programming", URL: "https://leetcode.com/problems/coin-change", Order: 14},
		{Slug: "merge-intervals", Title: "Merge Intervals", Difficulty: model.Medium, Pattern: "Intervals", URL: "https://leetcode.com/problems/merge-intervals", Order: 15},
	}
	for _, p := range defaultProblems {
		p.SheetID = sheet.ID
		db.Create(&p)
	}
}

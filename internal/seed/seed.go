// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"pulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with realistic demo content: users, posts,
// threaded comments and reactions spread over the last few days so the
// leaderboard has something to rank.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll truncates all seeded tables.
func (s *Seeder) ClearAll() error {
	return s.db.Exec("TRUNCATE TABLE reactions, comments, posts, users RESTART IDENTITY CASCADE").Error
}

// Run populates the database according to opts.
func (s *Seeder) Run(opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 50
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	posts, err := s.createPosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("seeding posts: %w", err)
	}
	comments, err := s.createComments(users, posts)
	if err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}
	if err := s.createReactions(users, posts, comments); err != nil {
		return fmt.Errorf("seeding reactions: %w", err)
	}

	log.Printf("Seeded %d users, %d posts, %d comments", len(users), len(posts), len(comments))
	return nil
}

func (s *Seeder) createUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password12345"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("user%d.%s", i, gofakeit.Email()),
			Password: string(hashed),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		post := &models.Post{
			Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
			UserID:    author.ID,
			CreatedAt: s.pastTime(72 * time.Hour),
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// createComments writes a mix of root comments and replies. Replies always
// target an earlier comment on the same post, so the threading invariant
// holds in seeded data.
func (s *Seeder) createComments(users []*models.User, posts []*models.Post) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, post := range posts {
		var onPost []*models.Comment
		for i, n := 0, s.rand.Intn(6); i < n; i++ {
			author := users[s.rand.Intn(len(users))]
			comment := &models.Comment{
				Content:   gofakeit.Sentence(s.rand.Intn(12) + 3),
				UserID:    author.ID,
				PostID:    post.ID,
				CreatedAt: post.CreatedAt.Add(time.Duration(i+1) * time.Minute),
			}
			if len(onPost) > 0 && s.rand.Intn(3) == 0 {
				parent := onPost[s.rand.Intn(len(onPost))]
				comment.ParentID = &parent.ID
			}
			if err := s.db.Create(comment).Error; err != nil {
				return nil, err
			}
			onPost = append(onPost, comment)
		}
		comments = append(comments, onPost...)
	}
	return comments, nil
}

func (s *Seeder) createReactions(users []*models.User, posts []*models.Post, comments []*models.Comment) error {
	for _, user := range users {
		for i, n := 0, s.rand.Intn(10); i < n; i++ {
			kind := models.TargetPost
			var targetID uint
			if len(comments) > 0 && s.rand.Intn(2) == 0 {
				kind = models.TargetComment
				targetID = comments[s.rand.Intn(len(comments))].ID
			} else {
				targetID = posts[s.rand.Intn(len(posts))].ID
			}

			reaction := &models.Reaction{
				UserID:     user.ID,
				TargetKind: kind,
				TargetID:   targetID,
				CreatedAt:  s.pastTime(48 * time.Hour),
			}
			// The unique tuple index rejects duplicate picks; skip them.
			if err := s.db.Create(reaction).Error; err != nil {
				continue
			}
		}
	}
	return nil
}

func (s *Seeder) pastTime(span time.Duration) time.Time {
	return time.Now().Add(-time.Duration(s.rand.Int63n(int64(span))))
}

package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
)

const (
	collectionProjects   = "projects"
	collectionSkills     = "skills"
	collectionExperience = "experience"
)

// ContentRepository serves the portfolio catalogs from MongoDB. It is the
// optional persistent backend; Seed replicates the built-in catalogs into it
// at startup so the query endpoints read a single source.
type ContentRepository struct {
	projects   *mongo.Collection
	skills     *mongo.Collection
	experience *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		projects:   db.Collection(collectionProjects),
		skills:     db.Collection(collectionSkills),
		experience: db.Collection(collectionExperience),
	}
}

// Seed upserts the built-in catalogs. Projects and skills are keyed by their
// natural ids; experience is replaced wholesale since it has no stable key.
func (r *ContentRepository) Seed(ctx context.Context, projects []domain.Project, skills []domain.Skill, experience []domain.Experience) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	for _, p := range projects {
		if _, err := r.projects.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, opts); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
	}
	for _, s := range skills {
		if _, err := r.skills.ReplaceOne(ctx, bson.M{"_id": s.Name}, s, opts); err != nil {
			return fmt.Errorf("seed skills: %w", err)
		}
	}

	if _, err := r.experience.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("seed experience: %w", err)
	}
	docs := make([]interface{}, len(experience))
	for i, e := range experience {
		docs[i] = e
	}
	if len(docs) > 0 {
		if _, err := r.experience.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed experience: %w", err)
		}
	}
	return nil
}

func (r *ContentRepository) Projects(ctx context.Context) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.projects.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	var out []domain.Project
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return out, nil
}

func (r *ContentRepository) ProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Project
	err := r.projects.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &p, nil
}

func (r *ContentRepository) Skills(ctx context.Context) ([]domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.skills.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "proficiency", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find skills: %w", err)
	}
	var out []domain.Skill
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return out, nil
}

func (r *ContentRepository) Experience(ctx context.Context) ([]domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.experience.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find experience: %w", err)
	}
	var out []domain.Experience
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode experience: %w", err)
	}
	return out, nil
}

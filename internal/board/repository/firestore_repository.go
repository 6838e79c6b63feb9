package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mytask-backend/internal/board/domain"
)

// firestoreBoardRepository implements BoardRepository on Cloud Firestore
type firestoreBoardRepository struct {
	client *firestore.Client
}

// NewFirestoreBoardRepository creates a new Firestore-based BoardRepository
func NewFirestoreBoardRepository(client *firestore.Client) BoardRepository {
	return &firestoreBoardRepository{client: client}
}

func (r *firestoreBoardRepository) boardsRef(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("boards")
}

func (r *firestoreBoardRepository) Create(ctx context.Context, userID string, board *domain.Board) error {
	if board.ID == "" {
		board.ID = uuid.New().String()
	}
	board.CreatedAt = time.Now()
	board.UpdatedAt = time.Now()
	_, err := r.boardsRef(userID).Doc(board.ID).Create(ctx, board)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}
	return nil
}

func (r *firestoreBoardRepository) FindByID(ctx context.Context, userID, boardID string) (*domain.Board, error) {
	doc, err := r.boardsRef(userID).Doc(boardID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	var board domain.Board
	if err := doc.DataTo(&board); err != nil {
		return nil, err
	}
	if board.ID == "" {
		board.ID = doc.Ref.ID
	}
	return &board, nil
}

func (r *firestoreBoardRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Board, error) {
	iter := r.boardsRef(userID).Documents(ctx)
	defer iter.Stop()

	var boards []*domain.Board
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var board domain.Board
		if err := doc.DataTo(&board); err != nil {
			return nil, err
		}
		if board.ID == "" {
			board.ID = doc.Ref.ID
		}
		boards = append(boards, &board)
	}
	return boards, nil
}

func (r *firestoreBoardRepository) Update(ctx context.Context, userID string, board *domain.Board) error {
	board.UpdatedAt = time.Now()
	_, err := r.boardsRef(userID).Doc(board.ID).Set(ctx, board)
	return err
}

func (r *firestoreBoardRepository) Delete(ctx context.Context, userID, boardID string) error {
	_, err := r.boardsRef(userID).Doc(boardID).Delete(ctx)
	return err
}

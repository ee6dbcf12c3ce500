package service

import (
	"context"

	"agent-chat-be/internal/dto"
	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/repository/memory"
	"agent-chat-be/internal/repository/specification"
	"agent-chat-be/internal/repository/unitofwork"
	"agent-chat-be/pkg/artifact"
)

// IArtifactPanelService owns the one artifact slot each session has.
type IArtifactPanelService interface {
	Get(ctx context.Context, session entity.SessionContext) dto.PanelResponse
	Open(ctx context.Context, session entity.SessionContext, req *dto.OpenPanelRequest) (*dto.PanelResponse, error)
	Close(ctx context.Context, session entity.SessionContext) dto.PanelResponse

	StartStream(sessionKey string, a artifact.Artifact) artifact.Panel
	FinishStream(sessionKey, artifactID string) artifact.Panel
}

type artifactPanelService struct {
	uowFactory unitofwork.RepositoryFactory
	panels     *memory.PanelRepository
}

func NewArtifactPanelService(uowFactory unitofwork.RepositoryFactory, panels *memory.PanelRepository) IArtifactPanelService {
	return &artifactPanelService{
		uowFactory: uowFactory,
		panels:     panels,
	}
}

func (s *artifactPanelService) Get(ctx context.Context, session entity.SessionContext) dto.PanelResponse {
	return s.panels.Get(session.Key())
}

// Open shows a stored artifact. The message must belong to a chat the
// session owns.
func (s *artifactPanelService) Open(ctx context.Context, session entity.SessionContext, req *dto.OpenPanelRequest) (*dto.PanelResponse, error) {
	if !session.Valid() {
		return nil, entity.ErrUnauthenticated
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx,
		specification.ByID{ID: req.ChatId},
		specification.OwnedBy{Session: session},
	)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, entity.ErrChatNotFound
	}

	msg, err := uow.MessageRepository().FindOne(ctx,
		specification.ByID{ID: req.MessageId},
		specification.ByChatID{ChatID: chat.Id},
	)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, entity.ErrMessageNotFound
	}
	if msg.Artifact == nil {
		return nil, entity.ErrNoArtifact
	}

	opened := *msg.Artifact
	panel := s.panels.Update(session.Key(), func(p artifact.Panel) artifact.Panel {
		return p.Show(opened, req.BoundingBox)
	})
	return &panel, nil
}

func (s *artifactPanelService) Close(ctx context.Context, session entity.SessionContext) dto.PanelResponse {
	return s.panels.Update(session.Key(), artifact.Panel.Close)
}

func (s *artifactPanelService) StartStream(sessionKey string, a artifact.Artifact) artifact.Panel {
	return s.panels.Update(sessionKey, func(p artifact.Panel) artifact.Panel {
		return p.Stream(a, p.BoundingBox)
	})
}

func (s *artifactPanelService) FinishStream(sessionKey, artifactID string) artifact.Panel {
	return s.panels.Update(sessionKey, func(p artifact.Panel) artifact.Panel {
		return p.Finish(artifactID)
	})
}

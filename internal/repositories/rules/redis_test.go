package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/keeperforge/keeper-core/internal/entities"
	"github.com/keeperforge/keeper-core/internal/errors"
	"github.com/keeperforge/keeper-core/internal/repositories/rules"
	"github.com/keeperforge/keeper-core/internal/testutils"
)

type RedisTestSuite struct {
	suite.Suite
	repo    rules.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := rules.NewRedis(&rules.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisTestSuite) TestNewRedis_RequiresClient() {
	_, err := rules.NewRedis(&rules.RedisConfig{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisTestSuite) TestSaveAndGetObject() {
	def := &entities.ObjectDefinition{
		ObjectID: 4,
		Name:     "Spell Book",
		Flags:    entities.ObjectFlagSpellBook | entities.ObjectFlagHighlightable,
	}

	_, err := s.repo.SaveObject(s.ctx, &rules.SaveObjectInput{Object: def})
	s.Require().NoError(err)

	out, err := s.repo.GetObject(s.ctx, &rules.GetObjectInput{ObjectID: 4})
	s.Require().NoError(err)
	s.Equal(def.Name, out.Object.Name)
	s.Equal(def.Flags, out.Object.Flags)
}

func (s *RedisTestSuite) TestGetObject_NotFound() {
	_, err := s.repo.GetObject(s.ctx, &rules.GetObjectInput{ObjectID: 42})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisTestSuite) TestSaveAndGetRoom() {
	def := &entities.RoomDefinition{
		RoomID: 1,
		Name:   "Dungeon Heart",
		Flags:  entities.RoomFlagDungeonHeart,
	}

	_, err := s.repo.SaveRoom(s.ctx, &rules.SaveRoomInput{Room: def})
	s.Require().NoError(err)

	out, err := s.repo.GetRoom(s.ctx, &rules.GetRoomInput{RoomID: 1})
	s.Require().NoError(err)
	s.True(out.Room.Flags.Has(entities.RoomFlagDungeonHeart))
}

func (s *RedisTestSuite) TestListObjects() {
	for _, id := range []entities.ObjectTypeID{3, 1} {
		_, err := s.repo.SaveObject(s.ctx, &rules.SaveObjectInput{
			Object: &entities.ObjectDefinition{ObjectID: id},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListObjects(s.ctx, &rules.ListObjectsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Objects, 2)
	s.Equal(entities.ObjectTypeID(1), out.Objects[0].ObjectID)
}

func TestRedisTestSuite(t *testing.T) {
	suite.Run(t, new(RedisTestSuite))
}

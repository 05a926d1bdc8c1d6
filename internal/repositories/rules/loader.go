package rules

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/keeperforge/keeper-core/internal/entities"
	"github.com/keeperforge/keeper-core/internal/errors"
)

// Tables holds a full rule table set as loaded from file
type Tables struct {
	Objects []entities.ObjectDefinition
	Rooms   []entities.RoomDefinition
}

type tablesFile struct {
	Objects []objectRecord `yaml:"objects"`
	Rooms   []roomRecord   `yaml:"rooms"`
}

type objectRecord struct {
	ObjectID entities.ObjectTypeID `yaml:"object_id"`
	Name     string                `yaml:"name"`
	Flags    []string              `yaml:"flags"`
}

type roomRecord struct {
	RoomID entities.RoomTypeID `yaml:"room_id"`
	Name   string              `yaml:"name"`
	Flags  []string            `yaml:"flags"`
}

var objectFlagNames = map[string]entities.ObjectFlag{
	"gold":                       entities.ObjectFlagGold,
	"spell_book":                 entities.ObjectFlagSpellBook,
	"highlightable":              entities.ObjectFlagHighlightable,
	"can_be_slapped":             entities.ObjectFlagCanBeSlapped,
	"can_be_picked_up":           entities.ObjectFlagCanBePickedUp,
	"can_be_dropped_on_any_land": entities.ObjectFlagCanBeDroppedOnAnyLand,
}

var roomFlagNames = map[string]entities.RoomFlag{
	"buildable":         entities.RoomFlagBuildable,
	"placeable_on_land": entities.RoomFlagPlaceableOnLand,
	"dungeon_heart":     entities.RoomFlagDungeonHeart,
}

// LoadTables reads rule tables from a YAML file
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rule tables file %s", path)
	}

	var file tablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse rule tables file")
	}

	tables := &Tables{}
	for _, rec := range file.Objects {
		var flags entities.ObjectFlag
		for _, name := range rec.Flags {
			flag, ok := objectFlagNames[name]
			if !ok {
				return nil, errors.InvalidArgumentf("unknown object flag %q on object %d", name, rec.ObjectID)
			}
			flags |= flag
		}
		tables.Objects = append(tables.Objects, entities.ObjectDefinition{
			ObjectID: rec.ObjectID,
			Name:     rec.Name,
			Flags:    flags,
		})
	}
	for _, rec := range file.Rooms {
		var flags entities.RoomFlag
		for _, name := range rec.Flags {
			flag, ok := roomFlagNames[name]
			if !ok {
				return nil, errors.InvalidArgumentf("unknown room flag %q on room %d", name, rec.RoomID)
			}
			flags |= flag
		}
		tables.Rooms = append(tables.Rooms, entities.RoomDefinition{
			RoomID: rec.RoomID,
			Name:   rec.Name,
			Flags:  flags,
		})
	}

	return tables, nil
}

// Seed stores every definition of the table set into the repository
func Seed(ctx context.Context, repo Repository, tables *Tables) error {
	if tables == nil {
		return errors.InvalidArgument("tables are required")
	}

	for i := range tables.Objects {
		if _, err := repo.SaveObject(ctx, &SaveObjectInput{Object: &tables.Objects[i]}); err != nil {
			return errors.Wrapf(err, "failed to seed object definition %d", tables.Objects[i].ObjectID)
		}
	}
	for i := range tables.Rooms {
		if _, err := repo.SaveRoom(ctx, &SaveRoomInput{Room: &tables.Rooms[i]}); err != nil {
			return errors.Wrapf(err, "failed to seed room definition %d", tables.Rooms[i].RoomID)
		}
	}

	return nil
}

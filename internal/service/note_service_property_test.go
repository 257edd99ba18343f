package service

import (
	"testing"

	"notes-service/internal/domain"
	"notes-service/internal/repository"

	"pgregory.net/rapid"
)

func titleGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 ]{0,40}`)
}

func contentGenerator() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.StringMatching(`[A-Za-z0-9 .,!?]{1,120}`),
	)
}

func TestNoteService_IDsStrictlyIncrease(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := newStepClock()
		service := NewNoteService(repository.NewMemoryNoteRepository(), WithClock(clock.Now))

		titles := rapid.SliceOfN(titleGenerator(), 1, 30).Draw(t, "titles")

		var last int64
		for _, title := range titles {
			note, err := service.Create(title, "")
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if note.ID <= last {
				t.Fatalf("id %d not greater than previous %d", note.ID, last)
			}
			last = note.ID
		}
	})
}

func TestNoteService_RandomOperationsKeepInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := newStepClock()
		service := NewNoteService(repository.NewMemoryNoteRepository(), WithClock(clock.Now))

		model := make(map[int64]domain.Note)
		var maxID int64

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				note, err := service.Create(titleGenerator().Draw(t, "title"), contentGenerator().Draw(t, "content"))
				if err != nil {
					t.Fatalf("Create failed: %v", err)
				}
				if note.ID != maxID+1 {
					t.Fatalf("expected id %d, got %d", maxID+1, note.ID)
				}
				maxID = note.ID
				model[note.ID] = *note
			case 1:
				id := rapid.Int64Range(1, maxID+2).Draw(t, "update id")
				content := contentGenerator().Draw(t, "new content")
				prev, exists := model[id]
				note, err := service.Update(id, domain.NotePatch{Content: &content})
				if !exists {
					if err == nil {
						t.Fatalf("expected not found for id %d", id)
					}
					continue
				}
				if err != nil {
					t.Fatalf("Update failed: %v", err)
				}
				if note.Title != prev.Title || note.Content != content || note.UpdatedAt.Before(prev.UpdatedAt) {
					t.Fatalf("unexpected update result %+v from %+v", note, prev)
				}
				model[id] = *note
			case 2:
				id := rapid.Int64Range(1, maxID+2).Draw(t, "delete id")
				_, exists := model[id]
				err := service.Delete(id)
				if exists != (err == nil) {
					t.Fatalf("delete id %d: exists=%v err=%v", id, exists, err)
				}
				delete(model, id)
			}
		}

		list, _ := service.List()
		if len(list) != len(model) {
			t.Fatalf("expected %d notes, got %d", len(model), len(list))
		}
		for i, n := range list {
			if *n != model[n.ID] {
				t.Fatalf("note %d diverged: %+v vs %+v", n.ID, *n, model[n.ID])
			}
			if i > 0 && n.CreatedAt.Before(list[i-1].CreatedAt) {
				t.Fatalf("list not ordered by createdAt at %d", i)
			}
		}
	})
}

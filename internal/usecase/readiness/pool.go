package usecase_readiness

import (
	"math/rand/v2"

	"github.com/humanbelnik/kinomatch/core/internal/model"
)

// mergeDrafts returns the union of drafts without duplicates, in first-seen order.
func mergeDrafts(drafts ...[]model.MediaID) []model.MediaID {
	size := 0
	for _, d := range drafts {
		size += len(d)
	}

	seen := make(map[model.MediaID]struct{}, size)
	union := make([]model.MediaID, 0, size)
	for _, d := range drafts {
		for _, id := range d {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}
	return union
}

// fisherYates shuffles ids in place, every permutation equally likely.
func fisherYates(ids []model.MediaID) {
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

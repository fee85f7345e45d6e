package patch

import (
	"context"
	"fmt"
	"slices"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/metrics"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/utils"
)

var questTargets = []string{QuestIDSilentCaliber, QuestIDPistolKills}

func (a *applier) PatchQuests(ctx context.Context) int {
	log := logger.FromContext(ctx)

	changed := 0
	for _, questID := range questTargets {
		quest := a.db.Templates.Quests[questID]
		if quest == nil {
			log.Debug(LogMsgQuestMissing, "quest_id", questID)
			continue
		}

		added, err := addFinishWeapon(quest, QuestPistolTpl)
		if err != nil {
			metrics.RecordWarning(StepQuests)
			log.Error(LogMsgQuestPatchFailed, "quest_id", questID, "error", err)
			continue
		}
		if !added {
			log.Debug(LogMsgQuestAlreadyAccepted, "quest_id", questID, "weapon", QuestPistolTpl)
			continue
		}

		changed++
		metrics.QuestsPatched.Inc()
		log.Debug(LogMsgQuestWeaponAdded, "quest_id", questID, "quest", quest.QuestName, "weapon", QuestPistolTpl)
	}
	metrics.RecordMutations(StepQuests, changed)
	return changed
}

// addFinishWeapon adds tpl to the quest's finish weapon list on a copy and
// writes the copy back only when it changed.
func addFinishWeapon(quest *domain.Quest, tpl string) (bool, error) {
	weapons, ok := quest.FinishWeapons()
	if !ok {
		return false, fmt.Errorf(ErrFmtMalformedQuest, domain.ErrMalformedQuest, quest.ID)
	}

	updated, err := utils.DeepClone(weapons)
	if err != nil {
		return false, err
	}
	if slices.Contains(updated, tpl) {
		return false, nil
	}

	quest.SetFinishWeapons(append(updated, tpl))
	return true, nil
}

package models

type PregnancyStatus string

const (
	StatusPregnant    PregnancyStatus = "pregnant"
	StatusPostpartum  PregnancyStatus = "postpartum"
	StatusNotPregnant PregnancyStatus = "not_pregnant"
)

// 생성 요청에 쓰이는 사용자 프로필
// EmotionalState is only populated for variants that accept it.
type UserProfile struct {
	Name             string          `json:"name" validate:"notblank"`
	ChildName        *string         `json:"child_name,omitempty"`
	Age              int             `json:"age" validate:"gte=0"`
	PregnancyStatus  PregnancyStatus `json:"pregnancy_status" validate:"oneof=pregnant postpartum not_pregnant"`
	PregnancyWeek    *int            `json:"pregnancy_week,omitempty" validate:"omitempty,gte=0,lte=42"`
	ChildAge         *int            `json:"child_age,omitempty" validate:"omitempty,gte=0"`
	CurrentSituation string          `json:"current_situation" validate:"notblank"`
	Challenges       string          `json:"challenges" validate:"notblank"`
	Goals            string          `json:"goals" validate:"notblank"`
	EmotionalState   *string         `json:"emotional_state,omitempty"`
	ExtraNotes       *string         `json:"extra_notes,omitempty"`
}

// Upload envelope key, the profile lives under "user_info".
const UserInfoKey = "user_info"

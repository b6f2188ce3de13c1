package models

// MembershipPlan представляет тарифный план проживания.
type MembershipPlan struct {
	ID       string   `json:"id"`        // Уникальный идентификатор плана
	PlanName string   `json:"plan_name"` // Название плана: silver, gold, platinum
	Price    float64  `json:"price"`     // Стоимость плана
	Badge    string   `json:"badge"`     // Значок, отображаемый у пользователя
	Perks    []string `json:"perks"`     // Список преимуществ плана
}

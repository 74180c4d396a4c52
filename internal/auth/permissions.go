package auth

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"
)

// Caller - аутентифицированный пользователь. nil означает анонимный запрос.
type Caller struct {
	UserID  uint
	RoleID  *uint
	IsStaff bool
	// ProfileID заполняет сервис перед проверкой правил цепочки профиля
	ProfileID *uint
}

type Resource string

const (
	ResourceUser       Resource = "user"
	ResourceProfile    Resource = "profile"
	ResourceEducation  Resource = "education"
	ResourceExperience Resource = "experience"
	ResourceCompany    Resource = "company"
	ResourcePost       Resource = "post"
	ResourceApply      Resource = "apply"
	ResourceSavedPost  Resource = "saved_post"
)

type Action string

const (
	ActionList        Action = "list"
	ActionRetrieve    Action = "retrieve"
	ActionCreate      Action = "create"
	ActionUpdate      Action = "update"
	ActionDestroy     Action = "destroy"
	ActionRate        Action = "rate"
	ActionComment     Action = "comment"
	ActionListApplies Action = "list_applies"
	ActionApprove     Action = "approve"
)

// ============================================================================
// Предикаты. Каждый проверяется отдельно и комбинируется в правилах.
// ============================================================================

func IsAuthenticated(c *Caller) bool {
	return c != nil && c.UserID != 0
}

func HasRole(c *Caller, roleID uint) bool {
	return IsAuthenticated(c) && c.RoleID != nil && *c.RoleID == roleID
}

func IsHirer(c *Caller) bool {
	return HasRole(c, models.RoleHirerID)
}

func IsAdmin(c *Caller) bool {
	return IsAuthenticated(c) && (c.IsStaff || HasRole(c, models.RoleAdminID))
}

// OwnsUser - прямая ссылка сущности на пользователя совпадает с вызывающим
func OwnsUser(c *Caller, target any) bool {
	owned, ok := target.(models.UserOwned)
	return ok && IsAuthenticated(c) && owned.OwnerUserID() == c.UserID
}

// OwnsProfile - профиль вызывающего совпадает с профилем сущности
func OwnsProfile(c *Caller, target any) bool {
	owned, ok := target.(models.ProfileOwned)
	return ok && IsAuthenticated(c) && c.ProfileID != nil && *c.ProfileID == owned.OwnerProfileID()
}

// OwnsPostCompany - компания вакансии принадлежит вызывающему
func OwnsPostCompany(c *Caller, target any) bool {
	owned, ok := target.(models.CompanyOwned)
	return ok && IsAuthenticated(c) && owned.CompanyOwnerID() == c.UserID
}

// ============================================================================
// Правила
// ============================================================================

type Rule func(c *Caller, target any) bool

// All - логическое И
func All(rules ...Rule) Rule {
	return func(c *Caller, target any) bool {
		for _, rule := range rules {
			if !rule(c, target) {
				return false
			}
		}
		return true
	}
}

func Not(rule Rule) Rule {
	return func(c *Caller, target any) bool {
		return !rule(c, target)
	}
}

func callerOnly(pred func(*Caller) bool) Rule {
	return func(c *Caller, _ any) bool {
		return pred(c)
	}
}

var (
	authenticated = callerOnly(IsAuthenticated)
	hirer         = callerOnly(IsHirer)
	admin         = callerOnly(IsAdmin)
	owner         = Rule(OwnsUser)
	profileOwner  = Rule(OwnsProfile)
	companyOwner  = Rule(OwnsPostCompany)
)

// Policy - таблица правил (ресурс, действие). Действие без правила - публичное чтение.
type Policy struct {
	rules map[Resource]map[Action]Rule
}

// NewPolicy создает политику доступа доски вакансий
func NewPolicy() *Policy {
	p := &Policy{rules: make(map[Resource]map[Action]Rule)}

	p.Register(ResourceUser, ActionList, admin)
	p.Register(ResourceUser, ActionUpdate, All(authenticated, owner))

	for _, act := range []Action{ActionCreate, ActionUpdate, ActionDestroy} {
		p.Register(ResourceProfile, act, All(authenticated, owner))
	}
	p.Register(ResourceProfile, ActionRetrieve, authenticated)

	for _, res := range []Resource{ResourceEducation, ResourceExperience} {
		p.Register(res, ActionRetrieve, authenticated)
		p.Register(res, ActionCreate, authenticated)
		p.Register(res, ActionUpdate, All(authenticated, profileOwner))
		p.Register(res, ActionDestroy, All(authenticated, profileOwner))
	}

	p.Register(ResourceCompany, ActionCreate, All(authenticated, owner))
	p.Register(ResourceCompany, ActionUpdate, All(authenticated, owner))
	// Работодатель не может оценивать и комментировать компании
	p.Register(ResourceCompany, ActionRate, All(authenticated, Not(hirer)))
	p.Register(ResourceCompany, ActionComment, All(authenticated, Not(hirer)))
	p.Register(ResourceCompany, ActionApprove, admin)

	p.Register(ResourcePost, ActionCreate, hirer)
	// Роль и владение - два независимых предиката
	p.Register(ResourcePost, ActionUpdate, All(hirer, companyOwner))
	p.Register(ResourcePost, ActionDestroy, All(hirer, companyOwner))
	p.Register(ResourcePost, ActionListApplies, All(hirer, companyOwner))

	p.Register(ResourceApply, ActionList, authenticated)
	p.Register(ResourceApply, ActionCreate, authenticated)
	p.Register(ResourceApply, ActionRetrieve, All(authenticated, owner))
	p.Register(ResourceApply, ActionUpdate, All(authenticated, owner))
	p.Register(ResourceApply, ActionDestroy, All(authenticated, owner))

	p.Register(ResourceSavedPost, ActionList, authenticated)
	p.Register(ResourceSavedPost, ActionCreate, authenticated)
	p.Register(ResourceSavedPost, ActionDestroy, All(authenticated, owner))

	return p
}

// Register задает (или заменяет) правило
func (p *Policy) Register(res Resource, act Action, rule Rule) {
	if p.rules[res] == nil {
		p.rules[res] = make(map[Action]Rule)
	}
	p.rules[res][act] = rule
}

// Allowed - булев результат правила; без правила - true
func (p *Policy) Allowed(c *Caller, res Resource, act Action, target any) bool {
	rule, ok := p.rules[res][act]
	if !ok {
		return true
	}
	return rule(c, target)
}

// Authorize переводит результат в ошибки: аноним - 401, отказ правила - 403.
// Цель должна быть уже загружена: политика ничего не ищет сама.
func (p *Policy) Authorize(c *Caller, res Resource, act Action, target any) error {
	rule, ok := p.rules[res][act]
	if !ok {
		return nil
	}
	if !IsAuthenticated(c) {
		return apperrors.ErrAuthenticationRequired
	}
	if !rule(c, target) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

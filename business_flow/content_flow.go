package businessflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arkasoft/arka-portal/app/dto"
	"github.com/arkasoft/arka-portal/app/services"
	"github.com/arkasoft/arka-portal/config"
	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/repository"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/xuri/excelize/v2"
)

// ContentFlow defines public content reads, contact intake and staff CRUD for
// the editorial catalog
type ContentFlow interface {
	GetContentBundle(ctx context.Context, lang string, metadata *ClientMetadata) (*dto.ContentBundleResponse, error)
	ListHero(ctx context.Context, metadata *ClientMetadata) (*dto.ListHeroResponse, error)
	ListServices(ctx context.Context, metadata *ClientMetadata) (*dto.ListServicesResponse, error)
	ListTeam(ctx context.Context, metadata *ClientMetadata) (*dto.ListTeamResponse, error)
	ListAbout(ctx context.Context, metadata *ClientMetadata) (*dto.ListAboutResponse, error)
	ListContactInfo(ctx context.Context, metadata *ClientMetadata) (*dto.ListContactInfoResponse, error)
	SubmitContact(ctx context.Context, req *dto.ContactRequest, metadata *ClientMetadata) (*dto.ContactResponse, error)

	AdminListHero(ctx context.Context, metadata *ClientMetadata) (*dto.ListHeroResponse, error)
	AdminSaveHero(ctx context.Context, req *dto.SaveHeroRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error)
	AdminDeleteHero(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
	AdminListServices(ctx context.Context, metadata *ClientMetadata) (*dto.ListServicesResponse, error)
	AdminSaveService(ctx context.Context, req *dto.SaveServiceRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error)
	AdminDeleteService(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
	AdminListTeam(ctx context.Context, metadata *ClientMetadata) (*dto.ListTeamResponse, error)
	AdminSaveTeamMember(ctx context.Context, req *dto.SaveTeamMemberRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error)
	AdminDeleteTeamMember(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
	AdminListAbout(ctx context.Context, metadata *ClientMetadata) (*dto.ListAboutResponse, error)
	AdminSaveAbout(ctx context.Context, req *dto.SaveAboutRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error)
	AdminDeleteAbout(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
	AdminListContactInfo(ctx context.Context, metadata *ClientMetadata) (*dto.ListContactInfoResponse, error)
	AdminSaveContactInfo(ctx context.Context, req *dto.SaveContactInfoRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error)
	AdminDeleteContactInfo(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
	AdminListSettings(ctx context.Context, metadata *ClientMetadata) (*dto.ListSettingsResponse, error)
	AdminSaveSetting(ctx context.Context, req *dto.SaveSettingRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error)
	AdminDeleteSetting(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
	AdminListContactMessages(ctx context.Context, req *dto.ListContactMessagesRequest, metadata *ClientMetadata) (*dto.ListContactMessagesResponse, error)
	AdminMarkContactMessageRead(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
	AdminDeleteContactMessage(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error)
	AdminExportContactMessages(ctx context.Context, metadata *ClientMetadata) ([]byte, string, error)
}

// ContentFlowImpl implements ContentFlow
type ContentFlowImpl struct {
	heroRepo           repository.HeroSectionRepository
	serviceRepo        repository.ServiceRepository
	teamRepo           repository.TeamMemberRepository
	aboutRepo          repository.AboutSectionRepository
	contactInfoRepo    repository.ContactInfoRepository
	contactMessageRepo repository.ContactMessageRepository
	settingRepo        repository.SiteSettingRepository
	notifier           services.NotificationService
	adminCfg           config.AdminConfig
}

func NewContentFlow(
	heroRepo repository.HeroSectionRepository,
	serviceRepo repository.ServiceRepository,
	teamRepo repository.TeamMemberRepository,
	aboutRepo repository.AboutSectionRepository,
	contactInfoRepo repository.ContactInfoRepository,
	contactMessageRepo repository.ContactMessageRepository,
	settingRepo repository.SiteSettingRepository,
	notifier services.NotificationService,
	adminCfg config.AdminConfig,
) ContentFlow {
	return &ContentFlowImpl{
		heroRepo:           heroRepo,
		serviceRepo:        serviceRepo,
		teamRepo:           teamRepo,
		aboutRepo:          aboutRepo,
		contactInfoRepo:    contactInfoRepo,
		contactMessageRepo: contactMessageRepo,
		settingRepo:        settingRepo,
		notifier:           notifier,
		adminCfg:           adminCfg,
	}
}

// GetContentBundle aggregates the landing payload in one round trip. The lang
// parameter is request-scoped only and is echoed back untouched.
func (f *ContentFlowImpl) GetContentBundle(ctx context.Context, lang string, metadata *ClientMetadata) (*dto.ContentBundleResponse, error) {
	if !utils.IsSupportedLocale(lang) {
		lang = utils.LocalePersian
	}

	active := true

	heroes, err := f.heroRepo.ByFilter(ctx, models.HeroSectionFilter{IsActive: &active}, "", 1, 0)
	if err != nil {
		return nil, NewBusinessError("CONTENT_BUNDLE_FAILED", "Failed to load hero", err)
	}
	abouts, err := f.aboutRepo.ByFilter(ctx, models.AboutSectionFilter{IsActive: &active}, "", 1, 0)
	if err != nil {
		return nil, NewBusinessError("CONTENT_BUNDLE_FAILED", "Failed to load about", err)
	}
	contacts, err := f.contactInfoRepo.ByFilter(ctx, models.ContactInfoFilter{IsActive: &active}, "", 1, 0)
	if err != nil {
		return nil, NewBusinessError("CONTENT_BUNDLE_FAILED", "Failed to load contact info", err)
	}
	servicesRows, err := f.serviceRepo.ByFilter(ctx, models.ServiceFilter{IsActive: &active}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("CONTENT_BUNDLE_FAILED", "Failed to load services", err)
	}
	teamRows, err := f.teamRepo.ByFilter(ctx, models.TeamMemberFilter{IsActive: &active}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("CONTENT_BUNDLE_FAILED", "Failed to load team", err)
	}

	resp := &dto.ContentBundleResponse{
		Message:  "Content retrieved successfully",
		Language: lang,
		Services: make([]dto.ServiceItem, 0, len(servicesRows)),
		Team:     make([]dto.TeamMemberItem, 0, len(teamRows)),
	}
	if len(heroes) > 0 {
		h := toHeroItem(heroes[0])
		resp.Hero = &h
	}
	if len(abouts) > 0 {
		a := toAboutItem(abouts[0])
		resp.About = &a
	}
	if len(contacts) > 0 {
		c := toContactInfoItem(contacts[0])
		resp.ContactInfo = &c
	}
	for _, s := range servicesRows {
		resp.Services = append(resp.Services, toServiceItem(s))
	}
	for _, m := range teamRows {
		resp.Team = append(resp.Team, toTeamMemberItem(m))
	}

	return resp, nil
}

func (f *ContentFlowImpl) ListHero(ctx context.Context, metadata *ClientMetadata) (*dto.ListHeroResponse, error) {
	active := true
	return f.listHero(ctx, models.HeroSectionFilter{IsActive: &active})
}

func (f *ContentFlowImpl) AdminListHero(ctx context.Context, metadata *ClientMetadata) (*dto.ListHeroResponse, error) {
	return f.listHero(ctx, models.HeroSectionFilter{})
}

func (f *ContentFlowImpl) listHero(ctx context.Context, filter models.HeroSectionFilter) (*dto.ListHeroResponse, error) {
	rows, err := f.heroRepo.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_HERO_FAILED", "Failed to list hero sections", err)
	}
	items := make([]dto.HeroItem, 0, len(rows))
	for _, h := range rows {
		items = append(items, toHeroItem(h))
	}
	return &dto.ListHeroResponse{Message: "Hero sections retrieved successfully", Items: items}, nil
}

func (f *ContentFlowImpl) ListServices(ctx context.Context, metadata *ClientMetadata) (*dto.ListServicesResponse, error) {
	active := true
	return f.listServices(ctx, models.ServiceFilter{IsActive: &active})
}

func (f *ContentFlowImpl) AdminListServices(ctx context.Context, metadata *ClientMetadata) (*dto.ListServicesResponse, error) {
	return f.listServices(ctx, models.ServiceFilter{})
}

func (f *ContentFlowImpl) listServices(ctx context.Context, filter models.ServiceFilter) (*dto.ListServicesResponse, error) {
	rows, err := f.serviceRepo.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_SERVICES_FAILED", "Failed to list services", err)
	}
	items := make([]dto.ServiceItem, 0, len(rows))
	for _, s := range rows {
		items = append(items, toServiceItem(s))
	}
	return &dto.ListServicesResponse{Message: "Services retrieved successfully", Items: items}, nil
}

func (f *ContentFlowImpl) ListTeam(ctx context.Context, metadata *ClientMetadata) (*dto.ListTeamResponse, error) {
	active := true
	return f.listTeam(ctx, models.TeamMemberFilter{IsActive: &active})
}

func (f *ContentFlowImpl) AdminListTeam(ctx context.Context, metadata *ClientMetadata) (*dto.ListTeamResponse, error) {
	return f.listTeam(ctx, models.TeamMemberFilter{})
}

func (f *ContentFlowImpl) listTeam(ctx context.Context, filter models.TeamMemberFilter) (*dto.ListTeamResponse, error) {
	rows, err := f.teamRepo.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_TEAM_FAILED", "Failed to list team members", err)
	}
	items := make([]dto.TeamMemberItem, 0, len(rows))
	for _, m := range rows {
		items = append(items, toTeamMemberItem(m))
	}
	return &dto.ListTeamResponse{Message: "Team members retrieved successfully", Items: items}, nil
}

func (f *ContentFlowImpl) ListAbout(ctx context.Context, metadata *ClientMetadata) (*dto.ListAboutResponse, error) {
	active := true
	return f.listAbout(ctx, models.AboutSectionFilter{IsActive: &active})
}

func (f *ContentFlowImpl) AdminListAbout(ctx context.Context, metadata *ClientMetadata) (*dto.ListAboutResponse, error) {
	return f.listAbout(ctx, models.AboutSectionFilter{})
}

func (f *ContentFlowImpl) listAbout(ctx context.Context, filter models.AboutSectionFilter) (*dto.ListAboutResponse, error) {
	rows, err := f.aboutRepo.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_ABOUT_FAILED", "Failed to list about sections", err)
	}
	items := make([]dto.AboutItem, 0, len(rows))
	for _, a := range rows {
		items = append(items, toAboutItem(a))
	}
	return &dto.ListAboutResponse{Message: "About sections retrieved successfully", Items: items}, nil
}

func (f *ContentFlowImpl) ListContactInfo(ctx context.Context, metadata *ClientMetadata) (*dto.ListContactInfoResponse, error) {
	active := true
	return f.listContactInfo(ctx, models.ContactInfoFilter{IsActive: &active})
}

func (f *ContentFlowImpl) AdminListContactInfo(ctx context.Context, metadata *ClientMetadata) (*dto.ListContactInfoResponse, error) {
	return f.listContactInfo(ctx, models.ContactInfoFilter{})
}

func (f *ContentFlowImpl) listContactInfo(ctx context.Context, filter models.ContactInfoFilter) (*dto.ListContactInfoResponse, error) {
	rows, err := f.contactInfoRepo.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_CONTACT_INFO_FAILED", "Failed to list contact info", err)
	}
	items := make([]dto.ContactInfoItem, 0, len(rows))
	for _, c := range rows {
		items = append(items, toContactInfoItem(c))
	}
	return &dto.ListContactInfoResponse{Message: "Contact info retrieved successfully", Items: items}, nil
}

// SubmitContact stores an unauthenticated submission and alerts staff by
// email best-effort
func (f *ContentFlowImpl) SubmitContact(ctx context.Context, req *dto.ContactRequest, metadata *ClientMetadata) (*dto.ContactResponse, error) {
	message := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   req.Phone,
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}

	if err := f.contactMessageRepo.Save(ctx, &message); err != nil {
		return nil, NewBusinessError("CONTACT_SUBMIT_FAILED", "Failed to store contact message", err)
	}

	if f.notifier != nil && f.adminCfg.Email != "" {
		subject := fmt.Sprintf("New contact message: %s", truncate(message.Subject, 80))
		body := fmt.Sprintf("From: %s <%s>\n\n%s", message.Name, message.Email, message.Message)
		go func() {
			_ = f.notifier.SendEmail(f.adminCfg.Email, subject, body)
		}()
	}

	return &dto.ContactResponse{
		Message: "Contact message received",
		ID:      message.ID,
	}, nil
}

func (f *ContentFlowImpl) AdminSaveHero(ctx context.Context, req *dto.SaveHeroRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error) {
	var hero *models.HeroSection
	var err error
	if req.ID == 0 {
		hero = &models.HeroSection{}
	} else {
		hero, err = f.heroRepo.ByID(ctx, req.ID)
		if err != nil {
			return nil, NewBusinessError("SAVE_HERO_FAILED", "Failed to load hero section", err)
		}
		if hero == nil {
			return nil, ErrContentNotFound
		}
	}

	hero.TitleFa = req.TitleFa
	hero.TitleEn = req.TitleEn
	hero.SubtitleFa = req.SubtitleFa
	hero.SubtitleEn = req.SubtitleEn
	hero.BackgroundImage = req.BackgroundImage
	hero.CTAButtonTextFa = req.CTAButtonTextFa
	hero.CTAButtonTextEn = req.CTAButtonTextEn
	hero.CTAButtonLink = req.CTAButtonLink
	hero.SecondaryButtonTextFa = req.SecondaryButtonTextFa
	hero.SecondaryButtonTextEn = req.SecondaryButtonTextEn
	hero.SecondaryButtonLink = req.SecondaryButtonLink
	if req.IsActive != nil {
		hero.IsActive = req.IsActive
	}
	hero.Order = req.Order

	if req.ID == 0 {
		err = f.heroRepo.Save(ctx, hero)
	} else {
		err = f.heroRepo.Update(ctx, hero)
	}
	if err != nil {
		return nil, NewBusinessError("SAVE_HERO_FAILED", "Failed to store hero section", err)
	}

	return &dto.SaveContentResponse{Message: "Hero section saved successfully", Item: toHeroItem(hero)}, nil
}

func (f *ContentFlowImpl) AdminDeleteHero(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	hero, err := f.heroRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("DELETE_HERO_FAILED", "Failed to load hero section", err)
	}
	if hero == nil {
		return nil, ErrContentNotFound
	}
	if err := f.heroRepo.DeleteByID(ctx, id); err != nil {
		return nil, NewBusinessError("DELETE_HERO_FAILED", "Failed to delete hero section", err)
	}
	return &dto.DeleteResponse{Message: "Hero section deleted successfully"}, nil
}

func (f *ContentFlowImpl) AdminSaveService(ctx context.Context, req *dto.SaveServiceRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error) {
	var service *models.Service
	var err error
	if req.ID == 0 {
		service = &models.Service{}
	} else {
		service, err = f.serviceRepo.ByID(ctx, req.ID)
		if err != nil {
			return nil, NewBusinessError("SAVE_SERVICE_FAILED", "Failed to load service", err)
		}
		if service == nil {
			return nil, ErrContentNotFound
		}
	}

	service.TitleFa = req.TitleFa
	service.TitleEn = req.TitleEn
	service.DescriptionFa = req.DescriptionFa
	service.DescriptionEn = req.DescriptionEn
	if req.Icon != "" {
		service.Icon = req.Icon
	}
	service.Image = req.Image
	service.Technologies = req.Technologies
	service.FeaturesFa = req.FeaturesFa
	service.FeaturesEn = req.FeaturesEn
	service.CodeSnippet = req.CodeSnippet
	if req.IsActive != nil {
		service.IsActive = req.IsActive
	}
	service.Order = req.Order

	if req.ID == 0 {
		err = f.serviceRepo.Save(ctx, service)
	} else {
		err = f.serviceRepo.Update(ctx, service)
	}
	if err != nil {
		return nil, NewBusinessError("SAVE_SERVICE_FAILED", "Failed to store service", err)
	}

	return &dto.SaveContentResponse{Message: "Service saved successfully", Item: toServiceItem(service)}, nil
}

func (f *ContentFlowImpl) AdminDeleteService(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	service, err := f.serviceRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("DELETE_SERVICE_FAILED", "Failed to load service", err)
	}
	if service == nil {
		return nil, ErrContentNotFound
	}
	if err := f.serviceRepo.DeleteByID(ctx, id); err != nil {
		return nil, NewBusinessError("DELETE_SERVICE_FAILED", "Failed to delete service", err)
	}
	return &dto.DeleteResponse{Message: "Service deleted successfully"}, nil
}

func (f *ContentFlowImpl) AdminSaveTeamMember(ctx context.Context, req *dto.SaveTeamMemberRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error) {
	var member *models.TeamMember
	var err error
	if req.ID == 0 {
		member = &models.TeamMember{}
	} else {
		member, err = f.teamRepo.ByID(ctx, req.ID)
		if err != nil {
			return nil, NewBusinessError("SAVE_TEAM_MEMBER_FAILED", "Failed to load team member", err)
		}
		if member == nil {
			return nil, ErrContentNotFound
		}
	}

	member.NameFa = req.NameFa
	member.NameEn = req.NameEn
	member.PositionFa = req.PositionFa
	member.PositionEn = req.PositionEn
	member.BioFa = req.BioFa
	member.BioEn = req.BioEn
	member.Photo = req.Photo
	member.Skills = req.Skills
	member.ExperienceYears = req.ExperienceYears
	member.ProjectsCount = req.ProjectsCount
	member.Email = req.Email
	member.Linkedin = req.Linkedin
	member.Twitter = req.Twitter
	if req.IsActive != nil {
		member.IsActive = req.IsActive
	}
	member.Order = req.Order

	if req.ID == 0 {
		err = f.teamRepo.Save(ctx, member)
	} else {
		err = f.teamRepo.Update(ctx, member)
	}
	if err != nil {
		return nil, NewBusinessError("SAVE_TEAM_MEMBER_FAILED", "Failed to store team member", err)
	}

	return &dto.SaveContentResponse{Message: "Team member saved successfully", Item: toTeamMemberItem(member)}, nil
}

func (f *ContentFlowImpl) AdminDeleteTeamMember(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	member, err := f.teamRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("DELETE_TEAM_MEMBER_FAILED", "Failed to load team member", err)
	}
	if member == nil {
		return nil, ErrContentNotFound
	}
	if err := f.teamRepo.DeleteByID(ctx, id); err != nil {
		return nil, NewBusinessError("DELETE_TEAM_MEMBER_FAILED", "Failed to delete team member", err)
	}
	return &dto.DeleteResponse{Message: "Team member deleted successfully"}, nil
}

func (f *ContentFlowImpl) AdminSaveAbout(ctx context.Context, req *dto.SaveAboutRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error) {
	var about *models.AboutSection
	var err error
	if req.ID == 0 {
		about = &models.AboutSection{}
	} else {
		about, err = f.aboutRepo.ByID(ctx, req.ID)
		if err != nil {
			return nil, NewBusinessError("SAVE_ABOUT_FAILED", "Failed to load about section", err)
		}
		if about == nil {
			return nil, ErrContentNotFound
		}
	}

	about.TitleFa = req.TitleFa
	about.TitleEn = req.TitleEn
	about.DescriptionFa = req.DescriptionFa
	about.DescriptionEn = req.DescriptionEn
	about.Image = req.Image
	about.VideoURL = req.VideoURL
	about.ProjectsCompleted = req.ProjectsCompleted
	about.HappyClients = req.HappyClients
	about.AwardsWon = req.AwardsWon
	about.YearsExperience = req.YearsExperience
	if req.IsActive != nil {
		about.IsActive = req.IsActive
	}

	if req.ID == 0 {
		err = f.aboutRepo.Save(ctx, about)
	} else {
		err = f.aboutRepo.Update(ctx, about)
	}
	if err != nil {
		return nil, NewBusinessError("SAVE_ABOUT_FAILED", "Failed to store about section", err)
	}

	return &dto.SaveContentResponse{Message: "About section saved successfully", Item: toAboutItem(about)}, nil
}

func (f *ContentFlowImpl) AdminDeleteAbout(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	about, err := f.aboutRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("DELETE_ABOUT_FAILED", "Failed to load about section", err)
	}
	if about == nil {
		return nil, ErrContentNotFound
	}
	if err := f.aboutRepo.DeleteByID(ctx, id); err != nil {
		return nil, NewBusinessError("DELETE_ABOUT_FAILED", "Failed to delete about section", err)
	}
	return &dto.DeleteResponse{Message: "About section deleted successfully"}, nil
}

func (f *ContentFlowImpl) AdminSaveContactInfo(ctx context.Context, req *dto.SaveContactInfoRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error) {
	var info *models.ContactInfo
	var err error
	if req.ID == 0 {
		info = &models.ContactInfo{}
	} else {
		info, err = f.contactInfoRepo.ByID(ctx, req.ID)
		if err != nil {
			return nil, NewBusinessError("SAVE_CONTACT_INFO_FAILED", "Failed to load contact info", err)
		}
		if info == nil {
			return nil, ErrContentNotFound
		}
	}

	info.Email = req.Email
	info.Phone1 = req.Phone1
	info.Phone2 = req.Phone2
	info.AddressFa = req.AddressFa
	info.AddressEn = req.AddressEn
	info.GoogleMapsURL = req.GoogleMapsURL
	info.Instagram = req.Instagram
	info.Telegram = req.Telegram
	info.Linkedin = req.Linkedin
	info.Twitter = req.Twitter
	if req.IsActive != nil {
		info.IsActive = req.IsActive
	}

	if req.ID == 0 {
		err = f.contactInfoRepo.Save(ctx, info)
	} else {
		err = f.contactInfoRepo.Update(ctx, info)
	}
	if err != nil {
		return nil, NewBusinessError("SAVE_CONTACT_INFO_FAILED", "Failed to store contact info", err)
	}

	return &dto.SaveContentResponse{Message: "Contact info saved successfully", Item: toContactInfoItem(info)}, nil
}

func (f *ContentFlowImpl) AdminDeleteContactInfo(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	info, err := f.contactInfoRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("DELETE_CONTACT_INFO_FAILED", "Failed to load contact info", err)
	}
	if info == nil {
		return nil, ErrContentNotFound
	}
	if err := f.contactInfoRepo.DeleteByID(ctx, id); err != nil {
		return nil, NewBusinessError("DELETE_CONTACT_INFO_FAILED", "Failed to delete contact info", err)
	}
	return &dto.DeleteResponse{Message: "Contact info deleted successfully"}, nil
}

func (f *ContentFlowImpl) AdminListSettings(ctx context.Context, metadata *ClientMetadata) (*dto.ListSettingsResponse, error) {
	rows, err := f.settingRepo.ByFilter(ctx, models.SiteSettingFilter{}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("LIST_SETTINGS_FAILED", "Failed to list settings", err)
	}
	items := make([]dto.SiteSettingItem, 0, len(rows))
	for _, s := range rows {
		items = append(items, dto.SiteSettingItem{
			ID:          s.ID,
			Key:         s.Key,
			Value:       s.Value,
			Description: s.Description,
		})
	}
	return &dto.ListSettingsResponse{Message: "Settings retrieved successfully", Items: items}, nil
}

func (f *ContentFlowImpl) AdminSaveSetting(ctx context.Context, req *dto.SaveSettingRequest, metadata *ClientMetadata) (*dto.SaveContentResponse, error) {
	existing, err := f.settingRepo.ByKey(ctx, req.Key)
	if err != nil {
		return nil, NewBusinessError("SAVE_SETTING_FAILED", "Failed to check key uniqueness", err)
	}
	if existing != nil && existing.ID != req.ID {
		return nil, ErrSettingKeyExists
	}

	var setting *models.SiteSetting
	if req.ID == 0 {
		setting = &models.SiteSetting{}
	} else {
		setting, err = f.settingRepo.ByID(ctx, req.ID)
		if err != nil {
			return nil, NewBusinessError("SAVE_SETTING_FAILED", "Failed to load setting", err)
		}
		if setting == nil {
			return nil, ErrContentNotFound
		}
	}

	setting.Key = req.Key
	setting.Value = req.Value
	setting.Description = req.Description

	if req.ID == 0 {
		err = f.settingRepo.Save(ctx, setting)
	} else {
		err = f.settingRepo.Update(ctx, setting)
	}
	if err != nil {
		return nil, NewBusinessError("SAVE_SETTING_FAILED", "Failed to store setting", err)
	}

	return &dto.SaveContentResponse{
		Message: "Setting saved successfully",
		Item: dto.SiteSettingItem{
			ID:          setting.ID,
			Key:         setting.Key,
			Value:       setting.Value,
			Description: setting.Description,
		},
	}, nil
}

func (f *ContentFlowImpl) AdminDeleteSetting(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	setting, err := f.settingRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("DELETE_SETTING_FAILED", "Failed to load setting", err)
	}
	if setting == nil {
		return nil, ErrContentNotFound
	}
	if err := f.settingRepo.DeleteByID(ctx, id); err != nil {
		return nil, NewBusinessError("DELETE_SETTING_FAILED", "Failed to delete setting", err)
	}
	return &dto.DeleteResponse{Message: "Setting deleted successfully"}, nil
}

func (f *ContentFlowImpl) AdminListContactMessages(ctx context.Context, req *dto.ListContactMessagesRequest, metadata *ClientMetadata) (*dto.ListContactMessagesResponse, error) {
	filter := models.ContactMessageFilter{IsRead: req.IsRead}

	limit, offset := normalizePage(req.Page, req.PageSize)
	rows, err := f.contactMessageRepo.ByFilter(ctx, filter, "", limit, offset)
	if err != nil {
		return nil, NewBusinessError("LIST_CONTACT_MESSAGES_FAILED", "Failed to list contact messages", err)
	}
	total, err := f.contactMessageRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("LIST_CONTACT_MESSAGES_FAILED", "Failed to count contact messages", err)
	}

	items := make([]dto.ContactMessageItem, 0, len(rows))
	for _, m := range rows {
		items = append(items, toContactMessageItem(m))
	}

	return &dto.ListContactMessagesResponse{
		Message: "Contact messages retrieved successfully",
		Items:   items,
		Total:   total,
	}, nil
}

func (f *ContentFlowImpl) AdminMarkContactMessageRead(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	message, err := f.contactMessageRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("MARK_CONTACT_MESSAGE_FAILED", "Failed to load contact message", err)
	}
	if message == nil {
		return nil, ErrContactMessageNotFound
	}
	if err := f.contactMessageRepo.MarkRead(ctx, id); err != nil {
		return nil, NewBusinessError("MARK_CONTACT_MESSAGE_FAILED", "Failed to mark contact message", err)
	}
	return &dto.DeleteResponse{Message: "Contact message marked as read"}, nil
}

func (f *ContentFlowImpl) AdminDeleteContactMessage(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.DeleteResponse, error) {
	message, err := f.contactMessageRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("DELETE_CONTACT_MESSAGE_FAILED", "Failed to load contact message", err)
	}
	if message == nil {
		return nil, ErrContactMessageNotFound
	}
	if err := f.contactMessageRepo.DeleteByID(ctx, id); err != nil {
		return nil, NewBusinessError("DELETE_CONTACT_MESSAGE_FAILED", "Failed to delete contact message", err)
	}
	return &dto.DeleteResponse{Message: "Contact message deleted successfully"}, nil
}

// AdminExportContactMessages renders every stored submission to an xlsx
// workbook and returns the file bytes plus a dated filename
func (f *ContentFlowImpl) AdminExportContactMessages(ctx context.Context, metadata *ClientMetadata) ([]byte, string, error) {
	rows, err := f.contactMessageRepo.ByFilter(ctx, models.ContactMessageFilter{}, "created_at ASC, id ASC", 0, 0)
	if err != nil {
		return nil, "", NewBusinessError("EXPORT_CONTACT_MESSAGES_FAILED", "Failed to load contact messages", err)
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "ContactMessages"
	file.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Email", "Phone", "Subject", "Message", "Read", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, h)
	}

	for rowIdx, m := range rows {
		phone := ""
		if m.Phone != nil {
			phone = *m.Phone
		}
		values := []any{
			m.ID,
			m.Name,
			m.Email,
			phone,
			m.Subject,
			m.Message,
			utils.IsTrue(m.IsRead),
			m.CreatedAt.Format(time.RFC3339),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = file.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, "", NewBusinessError("EXPORT_CONTACT_MESSAGES_FAILED", "Failed to render workbook", err)
	}

	filename := fmt.Sprintf("contact-messages-%s.xlsx", utils.UTCNow().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func toHeroItem(h *models.HeroSection) dto.HeroItem {
	return dto.HeroItem{
		ID:                    h.ID,
		TitleFa:               h.TitleFa,
		TitleEn:               h.TitleEn,
		SubtitleFa:            h.SubtitleFa,
		SubtitleEn:            h.SubtitleEn,
		BackgroundImage:       h.BackgroundImage,
		CTAButtonTextFa:       h.CTAButtonTextFa,
		CTAButtonTextEn:       h.CTAButtonTextEn,
		CTAButtonLink:         h.CTAButtonLink,
		SecondaryButtonTextFa: h.SecondaryButtonTextFa,
		SecondaryButtonTextEn: h.SecondaryButtonTextEn,
		SecondaryButtonLink:   h.SecondaryButtonLink,
		IsActive:              utils.IsTrue(h.IsActive),
		Order:                 h.Order,
	}
}

func toServiceItem(s *models.Service) dto.ServiceItem {
	return dto.ServiceItem{
		ID:            s.ID,
		TitleFa:       s.TitleFa,
		TitleEn:       s.TitleEn,
		DescriptionFa: s.DescriptionFa,
		DescriptionEn: s.DescriptionEn,
		Icon:          s.Icon,
		Image:         s.Image,
		Technologies:  s.Technologies,
		FeaturesFa:    s.FeaturesFa,
		FeaturesEn:    s.FeaturesEn,
		CodeSnippet:   s.CodeSnippet,
		IsActive:      utils.IsTrue(s.IsActive),
		Order:         s.Order,
	}
}

func toTeamMemberItem(m *models.TeamMember) dto.TeamMemberItem {
	return dto.TeamMemberItem{
		ID:              m.ID,
		NameFa:          m.NameFa,
		NameEn:          m.NameEn,
		PositionFa:      m.PositionFa,
		PositionEn:      m.PositionEn,
		BioFa:           m.BioFa,
		BioEn:           m.BioEn,
		Photo:           m.Photo,
		Skills:          m.Skills,
		ExperienceYears: m.ExperienceYears,
		ProjectsCount:   m.ProjectsCount,
		Email:           m.Email,
		Linkedin:        m.Linkedin,
		Twitter:         m.Twitter,
		IsActive:        utils.IsTrue(m.IsActive),
		Order:           m.Order,
	}
}

func toAboutItem(a *models.AboutSection) dto.AboutItem {
	return dto.AboutItem{
		ID:                a.ID,
		TitleFa:           a.TitleFa,
		TitleEn:           a.TitleEn,
		DescriptionFa:     a.DescriptionFa,
		DescriptionEn:     a.DescriptionEn,
		Image:             a.Image,
		VideoURL:          a.VideoURL,
		ProjectsCompleted: a.ProjectsCompleted,
		HappyClients:      a.HappyClients,
		AwardsWon:         a.AwardsWon,
		YearsExperience:   a.YearsExperience,
		IsActive:          utils.IsTrue(a.IsActive),
	}
}

func toContactInfoItem(c *models.ContactInfo) dto.ContactInfoItem {
	return dto.ContactInfoItem{
		ID:            c.ID,
		Email:         c.Email,
		Phone1:        c.Phone1,
		Phone2:        c.Phone2,
		AddressFa:     c.AddressFa,
		AddressEn:     c.AddressEn,
		GoogleMapsURL: c.GoogleMapsURL,
		Instagram:     c.Instagram,
		Telegram:      c.Telegram,
		Linkedin:      c.Linkedin,
		Twitter:       c.Twitter,
		IsActive:      utils.IsTrue(c.IsActive),
	}
}

func toContactMessageItem(m *models.ContactMessage) dto.ContactMessageItem {
	return dto.ContactMessageItem{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    utils.IsTrue(m.IsRead),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

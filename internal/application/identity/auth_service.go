package identity

import (
	"context"

	"github.com/fiberops/backend/internal/domain/identity"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Transactor runs a function inside a single database transaction
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuthService handles registration, authentication and session lifecycle.
// Organization membership is resolved here, at token issue time, and
// carried in the claims.
type AuthService struct {
	userRepo   identity.UserRepository
	orgRepo    identity.OrganizationRepository
	memberRepo identity.OrgMemberRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	tx         Transactor
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	orgRepo identity.OrganizationRepository,
	memberRepo identity.OrgMemberRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	tx Transactor,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		tx:         tx,
		logger:     logger,
	}
}

// Register onboards a new organization with its owner account. The
// organization, user and owner membership are created atomically.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	s.logger.Info("Registration attempt",
		zap.String("email", input.Email),
		zap.String("org_slug", input.OrgSlug))

	taken, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email availability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email availability")
	}
	if taken {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	slugTaken, err := s.orgRepo.ExistsBySlug(ctx, input.OrgSlug)
	if err != nil {
		s.logger.Error("Failed to check slug availability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check slug availability")
	}
	if slugTaken {
		return nil, shared.NewDomainError("SLUG_TAKEN", "An organization with this slug already exists")
	}

	org, err := identity.NewOrganization(input.OrgName, input.OrgSlug)
	if err != nil {
		return nil, err
	}
	user, err := identity.NewUser(input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, err
	}
	member, err := identity.NewOrgMember(org.ID, user.ID, identity.OrgRoleOwner)
	if err != nil {
		return nil, err
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.orgRepo.Create(ctx, org); err != nil {
			return err
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		return s.memberRepo.Create(ctx, member)
	})
	if err != nil {
		s.logger.Error("Failed to register organization", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register organization")
	}

	s.logger.Info("Organization registered",
		zap.String("org_id", org.ID.String()),
		zap.String("user_id", user.ID.String()))

	return s.issueTokens(user, org, member)
}

// Login authenticates a user and returns a token pair carrying the
// user's organization and role.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	s.logger.Info("Login attempt", zap.String("email", input.Email))

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("User not found during login", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.IsActive {
		s.logger.Warn("Login attempt for deactivated account", zap.String("email", input.Email))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	member, org, err := s.resolveMembership(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	user.RecordLogin()
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Login still succeeds; the timestamp is best effort.
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("org_id", org.ID.String()))

	return s.issueTokens(user, org, member)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The role is re-resolved so role changes take effect on refresh.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*AuthResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		switch err {
		case auth.ErrExpiredToken:
			return nil, shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
		default:
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
		}
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Failed to check token revocation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate refresh token")
	}
	if revoked {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Refresh token has been revoked")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	member, org, err := s.resolveMembership(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, user.Email, member.Role.String())
	if err != nil {
		if err == auth.ErrMaxRefreshExceeded {
			return nil, shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
		}
		s.logger.Error("Failed to refresh token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to refresh tokens")
	}

	// One-time use: the old refresh token is revoked for its remaining life
	if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to revoke old refresh token", zap.Error(err))
	}

	return s.buildAuthResult(tokenPair, user, org, member), nil
}

// Logout revokes the session's tokens for their remaining lifetime
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.AccessToken != "" {
		claims, err := s.jwtService.ValidateAccessToken(input.AccessToken)
		if err == nil {
			if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
				s.logger.Error("Failed to revoke access token", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
			}
		}
	}

	if input.RefreshToken != "" {
		claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
		if err == nil {
			if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
				s.logger.Error("Failed to revoke refresh token", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
			}
		}
	}

	return nil
}

// Me returns the profile and organization of the authenticated user
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	member, org, err := s.resolveMembership(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	info := userInfo(user, org, member)
	return &info, nil
}

func (s *AuthService) resolveMembership(ctx context.Context, userID uuid.UUID) (*identity.OrgMember, *identity.Organization, error) {
	member, err := s.memberRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Warn("User has no organization membership", zap.String("user_id", userID.String()))
		return nil, nil, shared.NewDomainError("NO_MEMBERSHIP", "User does not belong to an organization")
	}

	org, err := s.orgRepo.FindByID(ctx, member.OrgID)
	if err != nil {
		s.logger.Error("Membership points at missing organization",
			zap.String("user_id", userID.String()),
			zap.String("org_id", member.OrgID.String()))
		return nil, nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to resolve organization")
	}
	if !org.IsActive {
		return nil, nil, shared.NewDomainError("ORG_INACTIVE", "Organization has been deactivated")
	}

	return member, org, nil
}

func (s *AuthService) issueTokens(user *identity.User, org *identity.Organization, member *identity.OrgMember) (*AuthResult, error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		OrgID:  org.ID,
		UserID: user.ID,
		Email:  user.Email,
		Role:   member.Role.String(),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}
	return s.buildAuthResult(tokenPair, user, org, member), nil
}

func (s *AuthService) buildAuthResult(tokenPair *auth.TokenPair, user *identity.User, org *identity.Organization, member *identity.OrgMember) *AuthResult {
	return &AuthResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  userInfo(user, org, member),
	}
}

func userInfo(user *identity.User, org *identity.Organization, member *identity.OrgMember) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		OrgID:    org.ID,
		OrgName:  org.Name,
		OrgSlug:  org.Slug,
		Role:     member.Role.String(),
	}
}

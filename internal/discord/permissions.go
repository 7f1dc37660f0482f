package discord

import (
	"github.com/bwmarrin/discordgo"

	"herald/internal/dispatch"
)

// permissionBits maps dispatch capabilities to Discord permission flags.
var permissionBits = map[dispatch.Capability]int64{
	dispatch.CapAdministrator:  discordgo.PermissionAdministrator,
	dispatch.CapManageMessages: discordgo.PermissionManageMessages,
	dispatch.CapManageChannels: discordgo.PermissionManageChannels,
	dispatch.CapBanMembers:     discordgo.PermissionBanMembers,
	dispatch.CapKickMembers:    discordgo.PermissionKickMembers,
}

// hasChannelCapability reports whether a user holds a capability in a
// channel. Unknown capabilities and lookup failures deny.
func hasChannelCapability(s *discordgo.Session, userID, channelID string, cap dispatch.Capability) bool {
	bit, ok := permissionBits[cap]
	if !ok {
		return false
	}
	perms, err := s.UserChannelPermissions(userID, channelID)
	if err != nil {
		return false
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return perms&bit != 0
}

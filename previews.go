package githubtypes

// Preview is a GitHub API preview.
//
// See: https://developer.github.com/v3/previews/
type Preview int

const (
	// Allows you to download repositories from your GitHub user or
	// organization account to review, backup, and migrate data to
	// GitHub Enterprise Server.
	PreviewWyandotte Preview = iota

	// Import source repositories to GitHub with the API version of the
	// GitHub Importer.
	PreviewBarredRock

	// Exercise greater control over deployments with more information
	// and finer granularity.
	PreviewAntMan

	// Manage reactions for commits, issues, and comments.
	PreviewSquirrelGirl

	// Get a list of events for an issue or pull request.
	PreviewMockingbird

	// Get more information about your GitHub Pages site.
	PreviewMisterFantastic

	// Manage integrations through the API.
	PreviewMachineMan

	// Manage projects.
	PreviewInertia

	// Search commits.
	PreviewCloak

	// Retrieve community profile metrics (also known as community
	// health) for any public repository.
	PreviewBlackPanther

	// Users can block other users. Organizations can block users, too.
	PreviewGiantSentryFist

	// View a list of repository topics in calls that return repository
	// results.
	PreviewMercy

	// View all codes of conduct or get which code of conduct a
	// repository has currently.
	PreviewScarletWitch

	// Include nested team content in team payloads.
	PreviewHellcat

	// Transfer a repository to an organization or user.
	PreviewNightshade

	// You can now add a reason when you lock an issue.
	PreviewSailorV

	// You can now use the API to invite new users to an organization by
	// creating an organization invitation.
	PreviewDazzler

	// You can now use the API to manage team discussions and team
	// discussion comments.
	PreviewEcho

	// You can now use emoji in label names, add descriptions to labels,
	// and search for labels in a repository.
	PreviewSymmetra

	// You can now use the API to manage the setting for requiring
	// signed commits on protected branches.
	PreviewZzzax

	// You can now require multiple approving reviews for a pull request
	// using the API.
	PreviewLukeCage

	// Retrieve information from someone's hovercard.
	PreviewHagar

	// Allows a GitHub App to run external checks on a repository's
	// code. See the Check runs and Check suites APIs for more details.
	PreviewAntiope

	// The REST API v3 responses for issue events and issue timeline
	// events now return the project_card field for project-related
	// events.
	PreviewStarfox

	// GitHub App Manifests allow people to create preconfigured GitHub
	// Apps.
	PreviewFury

	// You can now update the environment of a deployment status and use
	// the in_progress and queued states.
	PreviewFlash

	// You can now configure whether organization members can create
	// repositories and which types of repositories they can create.
	PreviewSurtur

	// You can now provide more information in GitHub for URLs that link
	// to registered domains by using the Content Attachments API.
	PreviewCorsair

	// Allows you to temporarily restrict interactions, such as
	// commenting, opening issues, and creating pull requests, for
	// GitHub repositories or organizations.
	PreviewSombra

	// You can use the Draft Pull Requests API and its pull request
	// endpoints to see whether a pull request is in draft state.
	PreviewShadowCat

	// You can use the new endpoints in the Pages API to enable or
	// disable Pages.
	PreviewSwitcheroo

	// You can use the new endpoints in the Commits API to list branches
	// or pull requests for a commit.
	PreviewGroot

	// Owners of GitHub Apps can now uninstall an app using the Apps
	// API.
	PreviewGambit
)

// Name returns the kebab-case name of the preview.
func (p Preview) Name() string {
	switch p {
	case PreviewWyandotte:
		return "wyandotte"
	case PreviewBarredRock:
		return "barred-rock"
	case PreviewAntMan:
		return "ant-man"
	case PreviewSquirrelGirl:
		return "squirrel-girl"
	case PreviewMockingbird:
		return "mocking-bird"
	case PreviewMisterFantastic:
		return "mister-fantastic"
	case PreviewMachineMan:
		return "machine-man"
	case PreviewInertia:
		return "inertia"
	case PreviewCloak:
		return "cloak"
	case PreviewBlackPanther:
		return "black-panther"
	case PreviewGiantSentryFist:
		return "giant-sentry-fist"
	case PreviewMercy:
		return "mercy"
	case PreviewScarletWitch:
		return "scarlet-witch"
	case PreviewHellcat:
		return "hellcat"
	case PreviewNightshade:
		return "nightshade"
	case PreviewSailorV:
		return "sailor-v"
	case PreviewDazzler:
		return "dazzler"
	case PreviewEcho:
		return "echo"
	case PreviewSymmetra:
		return "symmetra"
	case PreviewZzzax:
		return "zzzax"
	case PreviewLukeCage:
		return "luke-cage"
	case PreviewHagar:
		return "hagar"
	case PreviewAntiope:
		return "antiope"
	case PreviewStarfox:
		return "starfox"
	case PreviewFury:
		return "fury"
	case PreviewFlash:
		return "flash"
	case PreviewSurtur:
		return "surtur"
	case PreviewCorsair:
		return "corsair"
	case PreviewSombra:
		return "sombra"
	case PreviewShadowCat:
		return "shadow-cat"
	case PreviewSwitcheroo:
		return "switcheroo"
	case PreviewGroot:
		return "groot"
	case PreviewGambit:
		return "gambit"
	default:
		return "unknown"
	}
}

// MediaType returns the media type for the preview, suitable for the
// Accept header in requests.
func (p Preview) MediaType() string {
	return "application/vnd.github." + p.Name() + "-preview+json"
}

func (p Preview) String() string {
	return p.Name()
}

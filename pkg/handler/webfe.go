package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"github.com/narasux/chemlab/pkg/envs"
	"github.com/narasux/chemlab/pkg/infras/pubchem"
	"github.com/narasux/chemlab/pkg/model"
	"github.com/narasux/chemlab/pkg/periodic"
	"github.com/narasux/chemlab/pkg/storage"
)

func GetHomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", map[string]any{
		"elementCount":  len(periodic.All()),
		"reactionCount": len(storage.ReactionData.Reactions),
		"categories":    periodic.Categories(),
	})
}

func ListElements(c *gin.Context) {
	c.HTML(http.StatusOK, "elements.html", map[string]any{
		"layout":     periodic.Layout(),
		"categories": periodic.Categories(),
	})
}

func RetrieveElement(c *gin.Context) {
	element, ok := findElement(c.Param("symbol"))
	if !ok {
		Get404(c)
		return
	}
	c.HTML(http.StatusOK, "element_detail.html", map[string]any{
		"element": element,
		// 同周期元素，便于页面内跳转
		"neighbours": periodic.All().FilterByPeriod(element.Period),
	})
}

func SearchCompounds(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	compounds := model.Compounds{}
	if query != "" {
		compounds = storage.Compounds.SearchByName(c.Request.Context(), query, pubchem.DefaultSearchLimit)
	}
	c.HTML(http.StatusOK, "compounds.html", map[string]any{
		"query":     query,
		"compounds": compounds,
	})
}

func RetrieveCompound(c *gin.Context) {
	cid, err := parseCID(c)
	if err != nil {
		Get404(c)
		return
	}
	ctx := c.Request.Context()
	c.HTML(http.StatusOK, "compound_detail.html", map[string]any{
		"compound": storage.Compounds.ResolveByIdentifier(ctx, cid),
		"likes":    countLikes(ctx, cid),
	})
}

// ListDrugs 常见药物，指定关键字时展示搜索结果
func ListDrugs(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	ctx := c.Request.Context()

	var drugs model.Compounds
	if query != "" {
		drugs = storage.Compounds.SearchByName(ctx, query, drugsPageLimit)
	} else {
		drugs = storage.Compounds.ListCommonDrugs(ctx, drugsPageLimit)
	}
	c.HTML(http.StatusOK, "drugs.html", map[string]any{
		"query": query,
		"drugs": drugs,
	})
}

func ListReactions(c *gin.Context) {
	c.HTML(http.StatusOK, "reactions.html", map[string]any{
		"query":     c.Query("q"),
		"curType":   c.Query("type"),
		"types":     storage.ReactionData.Types,
		"reactions": filterReactions(c),
	})
}

func RetrieveReaction(c *gin.Context) {
	reaction := storage.ReactionData.Reactions.GetByID(c.Param("id"))
	if reaction == nil {
		Get404(c)
		return
	}
	c.HTML(http.StatusOK, "reaction_detail.html", map[string]any{
		"reaction": reaction,
	})
}

func GetRSS(c *gin.Context) {
	feed := &feeds.Feed{
		Title:       "ChemLab",
		Link:        &feeds.Link{Href: fmt.Sprintf("%s://%s/reactions", envs.DomainScheme, envs.Domain)},
		Description: "chemical elements, compounds and reactions explained",
		Author:      &feeds.Author{Name: "ChemLab", Email: envs.ContactEmail},
		Updated:     time.Now(),
	}
	for _, reaction := range storage.ReactionData.Reactions {
		updatedAt, _ := time.ParseInLocation(time.DateOnly, reaction.UpdatedAt, time.Local)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          reaction.ID,
			Title:       reaction.Name,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s://%s/reactions/%s", envs.DomainScheme, envs.Domain, reaction.ID)},
			Description: reaction.Description,
			Author:      &feeds.Author{Name: "ChemLab", Email: envs.ContactEmail},
			Created:     updatedAt,
			Updated:     updatedAt,
		})
	}
	atom, err := feed.ToAtom()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	// 不直接使用 c.XML() 以避免被包装 <string></string>
	c.Writer.Header().Set("Content-Type", "application/xml; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	_, _ = c.Writer.Write([]byte(atom))
}

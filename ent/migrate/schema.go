// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlogPostsColumns holds the columns for the "blog_posts" table.
	BlogPostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 300},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 300},
		{Name: "excerpt", Type: field.TypeString, Size: 1000, Default: ""},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "image_url", Type: field.TypeString, Size: 1000, Default: ""},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "primary_category_id", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BlogPostsTable holds the schema information for the "blog_posts" table.
	BlogPostsTable = &schema.Table{
		Name:       "blog_posts",
		Columns:    BlogPostsColumns,
		PrimaryKey: []*schema.Column{BlogPostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blogpost_published",
				Unique:  false,
				Columns: []*schema.Column{BlogPostsColumns[6]},
			},
			{
				Name:    "blogpost_primary_category_id",
				Unique:  false,
				Columns: []*schema.Column{BlogPostsColumns[8]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "family", Type: field.TypeString, Size: 20},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "slug", Type: field.TypeString, Size: 100},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeInt64, Nullable: true},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "categories_categories_children",
				Columns:    []*schema.Column{CategoriesColumns[6]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "category_family",
				Unique:  false,
				Columns: []*schema.Column{CategoriesColumns[1]},
			},
			{
				Name:    "category_family_slug",
				Unique:  true,
				Columns: []*schema.Column{CategoriesColumns[1], CategoriesColumns[3]},
			},
		},
	}
	// CategoryLinksColumns holds the columns for the "category_links" table.
	CategoryLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "family", Type: field.TypeString, Size: 20},
		{Name: "entity_id", Type: field.TypeInt64},
		{Name: "link_order", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeInt64},
	}
	// CategoryLinksTable holds the schema information for the "category_links" table.
	CategoryLinksTable = &schema.Table{
		Name:       "category_links",
		Columns:    CategoryLinksColumns,
		PrimaryKey: []*schema.Column{CategoryLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "category_links_categories_links",
				Columns:    []*schema.Column{CategoryLinksColumns[5]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "categorylink_category_id",
				Unique:  false,
				Columns: []*schema.Column{CategoryLinksColumns[5]},
			},
			{
				Name:    "categorylink_family_entity_id",
				Unique:  false,
				Columns: []*schema.Column{CategoryLinksColumns[1], CategoryLinksColumns[2]},
			},
			{
				Name:    "categorylink_family_entity_id_category_id",
				Unique:  true,
				Columns: []*schema.Column{CategoryLinksColumns[1], CategoryLinksColumns[2], CategoryLinksColumns[5]},
			},
		},
	}
	// ContentBlocksColumns holds the columns for the "content_blocks" table.
	ContentBlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "page", Type: field.TypeString, Size: 100},
		{Name: "section_type", Type: field.TypeString, Size: 50},
		{Name: "position", Type: field.TypeInt},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "title", Type: field.TypeString, Size: 500, Default: ""},
		{Name: "subtitle", Type: field.TypeString, Size: 500, Default: ""},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "image_url", Type: field.TypeString, Size: 1000, Default: ""},
		{Name: "button_text", Type: field.TypeString, Size: 200, Default: ""},
		{Name: "button_url", Type: field.TypeString, Size: 1000, Default: ""},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContentBlocksTable holds the schema information for the "content_blocks" table.
	ContentBlocksTable = &schema.Table{
		Name:       "content_blocks",
		Columns:    ContentBlocksColumns,
		PrimaryKey: []*schema.Column{ContentBlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentblock_page",
				Unique:  false,
				Columns: []*schema.Column{ContentBlocksColumns[1]},
			},
			{
				Name:    "contentblock_page_position",
				Unique:  false,
				Columns: []*schema.Column{ContentBlocksColumns[1], ContentBlocksColumns[3]},
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 300},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 300},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "price", Type: field.TypeFloat64, Default: 0},
		{Name: "image_url", Type: field.TypeString, Size: 1000, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "primary_category_id", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "product_primary_category_id",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[7]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 300},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 300},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "image_url", Type: field.TypeString, Size: 1000, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "primary_category_id", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_position",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[6]},
			},
			{
				Name:    "project_primary_category_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[7]},
			},
		},
	}
	// ServicePagesColumns holds the columns for the "service_pages" table.
	ServicePagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 300},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ServicePagesTable holds the schema information for the "service_pages" table.
	ServicePagesTable = &schema.Table{
		Name:       "service_pages",
		Columns:    ServicePagesColumns,
		PrimaryKey: []*schema.Column{ServicePagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "servicepage_active",
				Unique:  false,
				Columns: []*schema.Column{ServicePagesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlogPostsTable,
		CategoriesTable,
		CategoryLinksTable,
		ContentBlocksTable,
		ProductsTable,
		ProjectsTable,
		ServicePagesTable,
	}
)

func init() {
	CategoriesTable.ForeignKeys[0].RefTable = CategoriesTable
	CategoryLinksTable.ForeignKeys[0].RefTable = CategoriesTable
}

package sql_test

import (
	"context"

	"pushbridge/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	type testModel struct {
		ID   uint `gorm:"primaryKey"`
		Name string
	}

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()

		err = orm.AutoMigrate(&testModel{})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		err = orm.WithContext(ctx).Where("1 = 1").Delete(&testModel{}).Error()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.Context("Create and First", func() {
		ginkgo.When("a record is created", func() {
			ginkgo.It("should be found again", func() {
				err := orm.WithContext(ctx).Create(&testModel{Name: "alpha"}).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				var found testModel
				err = orm.WithContext(ctx).Where("name = ?", "alpha").First(&found).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(found.Name).To(gomega.Equal("alpha"))
			})
		})

		ginkgo.When("no record matches", func() {
			ginkgo.It("should return ErrRecordNotFound", func() {
				var found testModel
				err := orm.WithContext(ctx).Where("name = ?", "missing").First(&found).Error()
				gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
			})
		})
	})

	ginkgo.Context("Count", func() {
		ginkgo.When("the table is empty", func() {
			ginkgo.It("should count zero", func() {
				var count int64
				err := orm.WithContext(ctx).Model(&testModel{}).Count(&count).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(count).To(gomega.Equal(int64(0)))
			})
		})
	})

	ginkgo.Context("Transaction", func() {
		ginkgo.When("the callback fails", func() {
			ginkgo.It("should roll back the write", func() {
				err := orm.Transaction(func(tx sql.ORM) error {
					if err := tx.WithContext(ctx).Create(&testModel{Name: "beta"}).Error(); err != nil {
						return err
					}
					return context.Canceled
				})
				gomega.Expect(err).To(gomega.HaveOccurred())

				var count int64
				err = orm.WithContext(ctx).Model(&testModel{}).Count(&count).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(count).To(gomega.Equal(int64(0)))
			})
		})
	})
})

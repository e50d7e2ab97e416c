package document

// DefaultResume is served when no DOCUMENT_SOURCE is configured.
const DefaultResume = `
Gowtham R
Data Analyst

Summary:
Detail-oriented Data Analyst with hands-on experience in SQL, Excel, Power BI, and Python for solving real-world business problems. Skilled in transforming raw data into actionable insights through data cleaning, visualization, and statistical analysis. Proven ability to develop interactive dashboards and communicate findings clearly to stakeholders. Passionate about data storytelling, pattern recognition, and supporting business decisions with evidence-backed analytics.

Experience:
- Data Analytics Intern Acciojob, Hyderabad (Remote) Dec 2024 – June 2025 | Built and deployed interactive dashboards in Power BI using Olympics and Walmart datasets, enabling visualization of key business insights like revenue trends, participation metrics, and gender distribution across 100+ years. Applied SQL, Excel, and Python for data cleaning and analysis, improving data quality and insight accuracy by over 30% across multiple real-world case projects.
- Data Science Intern   June 2024 NEOWEP Software Technology, Dharmapuri | Engineered a real-time gender and age detection system using OpenCV, achieving a 20 percent accuracy improvement through optimized algorithms. Enhanced database performance by implementing efficient data storage and indexing techniques, reducing query times by 15%.


Skills:
Data Analysis: Python (Pandas, NumPy), SQL, Excel, R
Data Visualization: Power BI, Tableau, Matplotlib, Seaborn
Databases: MySQL, Relational Database Design, Indexing
Machine Learning: Scikit-learn, TensorFlow (Basics), OpenCV
Techniques: Regression, Hypothesis Testing, Exploratory Data Analysis, Outlier
Detection
Soft Skills: Strong communication & presentation, Problem-solving mindset, Team
collaboration, Time management, Quick adaptability


Education:
- B.E. in Data Science, Annamalai University (2025)
`
